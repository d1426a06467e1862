package texasholdem

import (
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-server/internal/util"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/token"
)

// maxLogMessages is how much of the hand log is kept
const maxLogMessages = 25

// tokenLength is the length of a player's private token
const tokenLength = 24

// Round is the table state of one room. It is reused for every hand played in the room.
// A Round is not safe for concurrent use; the owner must serialize every call.
type Round struct {
	id        string
	logger    logrus.FieldLogger
	options   Options
	clock     quartz.Clock
	createdAt time.Time

	// participants is in seat order
	participants []*Participant
	deck         *deck.Deck
	community    deck.Hand

	status     Status
	phase      Phase
	handNumber int
	turn       int

	pot        int
	currentBet int
	// roundBets is what each player put in during the current betting round
	roundBets map[string]int
	// handBets is what each player put in during the whole hand, antes included
	handBets map[string]int
	// acted holds the players who have acted since the last bet or raise
	acted map[string]bool

	result *RoundResult
	// showdown is true when the last hand was settled between two or more players
	showdown bool
	logs     []*playable.LogMessage
}

// NewRound returns a new round for the room with the given id
func NewRound(logger logrus.FieldLogger, id string, opts Options) (*Round, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	return &Round{
		id:           id,
		logger:       logger.WithField("roomID", id),
		options:      opts,
		clock:        opts.Clock,
		createdAt:    opts.Clock.Now(),
		participants: make([]*Participant, 0, opts.MaxSeats),
		deck:         deck.New(),
		community:    make(deck.Hand, 0, 5),
		status:       StatusWaiting,
		roundBets:    make(map[string]int),
		handBets:     make(map[string]int),
		acted:        make(map[string]bool),
		logs:         make([]*playable.LogMessage, 0, maxLogMessages),
	}, nil
}

// ID returns the room id
func (r *Round) ID() string {
	return r.id
}

// Ante returns the ante collected from every player at the start of a hand
func (r *Round) Ante() int {
	return r.options.Ante
}

// Status returns whether a hand is being played
func (r *Round) Status() Status {
	return r.status
}

// CreatedAt returns when the round was created
func (r *Round) CreatedAt() time.Time {
	return r.createdAt
}

// HandNumber returns the number of hands that have been started
func (r *Round) HandNumber() int {
	return r.handNumber
}

// Tokens returns the private token of every seated player, in seat order
// It exists so the owner of the round can address each player's view.
func (r *Round) Tokens() []string {
	tokens := make([]string, len(r.participants))
	for i, p := range r.participants {
		tokens[i] = p.token
	}

	return tokens
}

// Join seats a new player
// An empty name is replaced with a random one.
func (r *Round) Join(name string, balance int) (Credentials, error) {
	if r.status != StatusWaiting {
		return Credentials{}, ErrHandInProgress
	}

	if len(r.participants) >= r.options.MaxSeats {
		return Credentials{}, ErrTableFull
	}

	if balance <= 0 {
		return Credentials{}, illegal("starting balance must be greater than zero")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = util.GetRandomName()
	}

	tok, err := token.Generate(tokenLength)
	if err != nil {
		return Credentials{}, err
	}

	p := &Participant{
		ID:      uuid.New().String(),
		Name:    name,
		token:   tok,
		balance: balance,
	}

	r.participants = append(r.participants, p)
	r.log(p.ID, "took a seat with ${%d}", balance)
	r.logger.WithFields(logrus.Fields{
		"playerID": p.ID,
		"balance":  balance,
	}).Info("player joined")

	return Credentials{ID: p.ID, Token: tok}, nil
}

// Ready marks the player as ready for the next hand
// When every seated player is ready, the hand is started and true is returned.
func (r *Round) Ready(token string) (bool, error) {
	p := r.participantByToken(token)
	if p == nil {
		return false, ErrPlayerNotFound
	}

	if r.status != StatusWaiting {
		return false, ErrHandInProgress
	}

	if !p.ready {
		p.ready = true
		r.log(p.ID, "is ready")
	}

	for _, other := range r.participants {
		if !other.ready {
			return false, nil
		}
	}

	if err := r.StartHand(); err != nil {
		if err == ErrInsufficientPlayers {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// StartHand collects the antes, deals the hole cards and the flop, and opens the betting
// Nothing is changed when an error is returned.
func (r *Round) StartHand() error {
	if r.status != StatusWaiting {
		return ErrHandInProgress
	}

	if r.fundedPlayers() < 2 {
		return ErrInsufficientPlayers
	}

	if r.options.BustPolicy == BustPolicyRemove {
		r.removeBusted()
	}

	r.handNumber++
	r.deck.Shuffle(deck.SeedFor(r.id, r.handNumber, r.clock.Now()))
	r.community = make(deck.Hand, 0, 5)
	r.pot = 0
	r.currentBet = 0
	r.turn = 0
	r.roundBets = make(map[string]int)
	r.handBets = make(map[string]int)
	r.acted = make(map[string]bool)
	r.phase = PhasePreFlop
	r.status = StatusInHand
	r.showdown = false

	r.logger.WithFields(logrus.Fields{
		"hand": r.handNumber,
		"seed": r.deck.GetSeed(),
	}).Info("starting hand")
	r.log("", "hand #%d started", r.handNumber)

	for _, p := range r.participants {
		p.cards = make(deck.Hand, 0, 2)
		p.allIn = false
		p.folded = p.balance == 0
		if p.folded {
			continue
		}

		ante := r.options.Ante
		if p.balance < ante {
			ante = p.balance
		}

		r.commit(p, ante)
	}

	for i := 0; i < 2; i++ {
		for _, p := range r.participants {
			if !p.folded {
				p.cards.AddCard(r.drawCard())
			}
		}
	}

	r.nextBettingRound()

	if r.eligiblePlayers() <= 1 {
		r.settle()
		return nil
	}

	r.turn, _ = r.firstEligible()
	return nil
}

// Summary returns an overview of the room
func (r *Round) Summary() Summary {
	return Summary{
		ID:         r.id,
		Ante:       r.options.Ante,
		Players:    len(r.participants),
		Status:     r.status,
		HandNumber: r.handNumber,
		CreatedAt:  r.createdAt,
	}
}

// Summary is an overview of a room
type Summary struct {
	ID         string    `json:"id"`
	Ante       int       `json:"ante"`
	Players    int       `json:"players"`
	Status     Status    `json:"status"`
	HandNumber int       `json:"handNumber"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (r *Round) participantByToken(token string) *Participant {
	if token == "" {
		return nil
	}

	for _, p := range r.participants {
		if p.token == token {
			return p
		}
	}

	return nil
}

func (r *Round) fundedPlayers() int {
	n := 0
	for _, p := range r.participants {
		if p.balance > 0 {
			n++
		}
	}

	return n
}

func (r *Round) removeBusted() {
	seated := make([]*Participant, 0, len(r.participants))
	for _, p := range r.participants {
		if p.balance > 0 {
			seated = append(seated, p)
			continue
		}

		r.log(p.ID, "left the table")
		r.logger.WithField("playerID", p.ID).Info("removed busted player")
	}

	r.participants = seated
}

// drawCards strips every card already dealt from the deck and draws n more
func (r *Round) drawCards(n int) deck.Hand {
	dealt := r.community.Clone()
	for _, p := range r.participants {
		dealt = append(dealt, p.cards...)
	}

	r.deck.RemoveCards(dealt)
	if !r.deck.CanDraw(n) {
		r.logger.WithFields(logrus.Fields{
			"want":      n,
			"cardsLeft": r.deck.CardsLeft(),
		}).Panic("not enough cards left in the deck")
	}

	cards := make(deck.Hand, n)
	for i := range cards {
		cards[i] = r.drawCard()
	}

	return cards
}

func (r *Round) drawCard() deck.Card {
	card, err := r.deck.Draw()
	if err != nil {
		// a table of ten uses 25 cards
		r.logger.WithError(err).Panic("could not draw a card")
	}

	return card
}

func (r *Round) log(playerID string, format string, a ...interface{}) *playable.LogMessage {
	msg := playable.SimpleLogMessage(r.clock.Now(), playerID, format, a...)
	r.logs = append(r.logs, msg)
	if len(r.logs) > maxLogMessages {
		r.logs = r.logs[len(r.logs)-maxLogMessages:]
	}

	return msg
}

func (r *Round) String() string {
	return fmt.Sprintf("Round(%s, hand #%d, %s)", r.id, r.handNumber, r.status)
}
