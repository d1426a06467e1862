package room

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"holdem-server/pkg/playable/poker/texasholdem"
)

func TestPitBoss_CreateRoom(t *testing.T) {
	a := assert.New(t)
	p, _, _ := setupPitBoss(t)

	id, err := p.CreateRoom(10)
	a.NoError(err)
	a.NotEmpty(id)

	d, err := p.Dealer(id)
	a.NoError(err)
	a.Equal(id, d.ID())
	a.Equal(10, d.Summary().Ante)

	_, err = p.CreateRoom(0)
	a.True(errors.Is(err, ErrInvalidAnte))
	a.EqualError(err, "invalid ante: ante must be between 1 and 1000")

	_, err = p.CreateRoom(1001)
	a.True(errors.Is(err, ErrInvalidAnte))
}

func TestPitBoss_roomNotFound(t *testing.T) {
	a := assert.New(t)
	p, _, _ := setupPitBoss(t)

	_, err := p.JoinRoom("nope", "a", 100)
	a.Equal(ErrRoomNotFound, err)

	_, err = p.SubmitReady("nope", "token")
	a.Equal(ErrRoomNotFound, err)

	a.Equal(ErrRoomNotFound, p.SubmitAction("nope", "token", "check", 0))

	_, err = p.PlayerView("nope", "token")
	a.Equal(ErrRoomNotFound, err)

	a.Equal(ErrRoomNotFound, p.ClientConnected(NewClient(nil, "nope", "token")))
}

func TestPitBoss_playHand(t *testing.T) {
	a := assert.New(t)
	p, _, n := setupPitBoss(t)

	id, err := p.CreateRoom(10)
	require.NoError(t, err)

	alice, err := p.JoinRoom(id, "alice", 100)
	require.NoError(t, err)
	bob, err := p.JoinRoom(id, "bob", 100)
	require.NoError(t, err)

	_, err = p.PlayerView(id, "nope")
	a.Equal(texasholdem.ErrPlayerNotFound, err)

	started, err := p.SubmitReady(id, alice.Token)
	a.NoError(err)
	a.False(started)
	started, err = p.SubmitReady(id, bob.Token)
	a.NoError(err)
	a.True(started)

	_, err = p.JoinRoom(id, "carol", 100)
	a.Equal(texasholdem.ErrHandInProgress, err)

	a.Equal(texasholdem.ErrNotYourTurn, p.SubmitAction(id, bob.Token, "check", 0))
	a.NoError(p.SubmitAction(id, alice.Token, "bet", 20))
	a.NoError(p.SubmitAction(id, bob.Token, "call", 0))

	view, err := p.PlayerView(id, alice.Token)
	a.NoError(err)
	a.Equal(60, view.Pot)
	a.Equal(texasholdem.PhaseTurn, view.Phase)
	a.Equal(alice.ID, view.Player.ID)

	// every player's view went to the notifier
	a.Equal(60, n.views[id+"."+alice.ID].Pot)
	a.Equal(60, n.views[id+"."+bob.ID].Pot)
	a.NotEmpty(n.summaries)
	a.Equal(2, n.summaries[len(n.summaries)-1].Players)
}

func TestPitBoss_ListRooms(t *testing.T) {
	a := assert.New(t)
	p, mClock, _ := setupPitBoss(t)

	old, err := p.CreateRoom(10)
	require.NoError(t, err)

	advance(mClock, 30*time.Minute)
	newer, err := p.CreateRoom(20)
	require.NoError(t, err)

	rooms := p.ListRooms()
	a.Len(rooms, 2)
	a.Equal(newer, rooms[0].ID)
	a.Equal(old, rooms[1].ID)

	advance(mClock, 31*time.Minute)
	rooms = p.ListRooms()
	a.Len(rooms, 1)
	a.Equal(newer, rooms[0].ID)
	a.Equal(20, rooms[0].Ante)
}

func TestPitBoss_Prune(t *testing.T) {
	a := assert.New(t)
	p, mClock, _ := setupPitBoss(t)

	idle, err := p.CreateRoom(10)
	require.NoError(t, err)

	busy, err := p.CreateRoom(10)
	require.NoError(t, err)
	c1, err := p.JoinRoom(busy, "a", 100)
	require.NoError(t, err)
	c2, err := p.JoinRoom(busy, "b", 100)
	require.NoError(t, err)
	_, err = p.SubmitReady(busy, c1.Token)
	require.NoError(t, err)
	started, err := p.SubmitReady(busy, c2.Token)
	require.NoError(t, err)
	require.True(t, started)

	client := NewClient(nil, idle, "")
	d, err := p.Dealer(idle)
	require.NoError(t, err)
	d.clients[client] = true

	a.Equal(0, p.Prune())

	advance(mClock, 7*time.Hour)
	fresh, err := p.CreateRoom(10)
	require.NoError(t, err)

	a.Equal(1, p.Prune())

	_, err = p.Dealer(idle)
	a.Equal(ErrRoomNotFound, err)
	_, err = p.Dealer(busy)
	a.NoError(err, "rooms in the middle of a hand are kept")
	_, err = p.Dealer(fresh)
	a.NoError(err)

	select {
	case <-client.Closed():
		a.Equal("room closed", client.CloseReason)
	default:
		a.Fail("client was not closed")
	}
}

func TestPitBoss_StartShift(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.StaleAfter = time.Millisecond
	p := NewPitBoss(logrus.StandardLogger(), quartz.NewReal(), opts, nil)

	id, err := p.CreateRoom(10)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = p.StartShift(ctx, 5*time.Millisecond)
	}()

	a.Eventually(func() bool {
		_, err := p.Dealer(id)
		return errors.Is(err, ErrRoomNotFound)
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		a.Fail("shift did not end")
	}
}
