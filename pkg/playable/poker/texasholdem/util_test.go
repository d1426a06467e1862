package texasholdem

import (
	"fmt"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"holdem-server/pkg/deck"
)

func testOptions(ante int) Options {
	opts := DefaultOptions()
	opts.Ante = ante
	opts.Clock = nil
	return opts
}

func setupRound(t *testing.T, opts Options, balances ...int) (*Round, []Credentials) {
	t.Helper()

	if opts.Clock == nil {
		opts.Clock = quartz.NewMock(t)
	}

	r, err := NewRound(logrus.StandardLogger(), "room-1", opts)
	require.NoError(t, err)

	creds := make([]Credentials, len(balances))
	for i, balance := range balances {
		c, err := r.Join(fmt.Sprintf("player-%d", i+1), balance)
		require.NoError(t, err)
		creds[i] = c
	}

	return r, creds
}

// setupHand seats the players and marks everybody ready, which starts the hand
func setupHand(t *testing.T, ante int, balances ...int) (*Round, []Credentials) {
	t.Helper()

	r, creds := setupRound(t, testOptions(ante), balances...)
	readyAll(t, r, creds)

	return r, creds
}

func readyAll(t *testing.T, r *Round, creds []Credentials) {
	t.Helper()

	for i, c := range creds {
		if r.participantByToken(c.Token).ready {
			continue
		}

		started, err := r.Ready(c.Token)
		require.NoError(t, err)
		if i < len(creds)-1 {
			require.False(t, started)
		}
	}

	require.Equal(t, StatusInHand, r.status)
}

// rig replaces the dealt cards so the outcome is known
// hole has one comma-separated pair per seat, an empty string leaves the seat alone
func rig(r *Round, flop string, rest string, hole ...string) {
	for i, cards := range hole {
		if cards != "" {
			r.participants[i].cards = deck.CardsFromString(cards)
		}
	}

	r.community = deck.CardsFromString(flop)
	r.deck.Cards = deck.CardsFromString(rest)
}

func assertAction(t *testing.T, r *Round, c Credentials, act string, amount int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, r.SubmitAction(c.Token, act, amount), msgAndArgs...)
}

func totalChips(r *Round) int {
	total := r.pot
	for _, p := range r.participants {
		total += p.balance
	}

	return total
}

func balances(r *Round) []int {
	b := make([]int, len(r.participants))
	for i, p := range r.participants {
		b[i] = p.balance
	}

	return b
}

func logMessages(r *Round) string {
	msgs := make([]string, len(r.logs))
	for i, msg := range r.logs {
		msgs[i] = msg.Message
	}

	return strings.Join(msgs, "\n")
}
