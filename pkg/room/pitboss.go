package room

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/playable/poker/texasholdem"
)

// Options configures the rooms a PitBoss manages
type Options struct {
	// MaxAnte is the largest ante a room may be created with
	MaxAnte int
	// ListWindow is how far back ListRooms looks
	ListWindow time.Duration
	// StaleAfter is the age after which an idle room is pruned
	StaleAfter time.Duration
	BustPolicy texasholdem.BustPolicy
}

// DefaultOptions returns the default room options
func DefaultOptions() Options {
	return Options{
		MaxAnte:    1000,
		ListWindow: time.Hour,
		StaleAfter: 6 * time.Hour,
		BustPolicy: texasholdem.BustPolicySitOut,
	}
}

// PitBoss is the directory of rooms
type PitBoss struct {
	logger   logrus.FieldLogger
	clock    quartz.Clock
	options  Options
	notifier Notifier

	dealers map[string]*Dealer
	lock    sync.RWMutex
}

// NewPitBoss returns a new room directory
// notifier may be nil
func NewPitBoss(logger logrus.FieldLogger, clock quartz.Clock, opts Options, notifier Notifier) *PitBoss {
	if notifier == nil {
		notifier = nopNotifier{}
	}

	return &PitBoss{
		logger:   logger,
		clock:    clock,
		options:  opts,
		notifier: notifier,
		dealers:  make(map[string]*Dealer),
	}
}

// StartShift prunes stale rooms every interval until the context is done
func (p *PitBoss) StartShift(ctx context.Context, interval time.Duration) error {
	w := p.clock.TickerFunc(ctx, interval, func() error {
		if n := p.Prune(); n > 0 {
			p.logger.WithField("rooms", n).Info("pruned stale rooms")
		}

		return nil
	}, "pitboss", "prune")

	return w.Wait()
}

// CreateRoom opens a new room and returns its id
func (p *PitBoss) CreateRoom(ante int) (string, error) {
	if ante < 1 || ante > p.options.MaxAnte {
		return "", fmt.Errorf("%w: ante must be between 1 and %d", ErrInvalidAnte, p.options.MaxAnte)
	}

	id := uuid.New().String()
	round, err := texasholdem.NewRound(p.logger, id, texasholdem.Options{
		Ante:       ante,
		BustPolicy: p.options.BustPolicy,
		MaxSeats:   texasholdem.MaxSeats,
		Clock:      p.clock,
	})
	if err != nil {
		return "", err
	}

	p.lock.Lock()
	p.dealers[id] = NewDealer(p.logger, round, p.notifier)
	p.lock.Unlock()

	p.logger.WithFields(logrus.Fields{
		"uuid": id,
		"ante": ante,
	}).Info("created room")

	return id, nil
}

// Dealer returns the dealer of the room
func (p *PitBoss) Dealer(roomID string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	d, ok := p.dealers[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return d, nil
}

// JoinRoom seats a player in the room
func (p *PitBoss) JoinRoom(roomID, name string, balance int) (texasholdem.Credentials, error) {
	d, err := p.Dealer(roomID)
	if err != nil {
		return texasholdem.Credentials{}, err
	}

	return d.Join(name, balance)
}

// SubmitReady marks the player as ready
// true is returned when this started a hand
func (p *PitBoss) SubmitReady(roomID, token string) (bool, error) {
	d, err := p.Dealer(roomID)
	if err != nil {
		return false, err
	}

	return d.Ready(token)
}

// SubmitAction applies a betting action in the room
func (p *PitBoss) SubmitAction(roomID, token, actionType string, amount int) error {
	d, err := p.Dealer(roomID)
	if err != nil {
		return err
	}

	return d.SubmitAction(token, actionType, amount)
}

// PlayerView returns the player's view of the room
func (p *PitBoss) PlayerView(roomID, token string) (*texasholdem.PlayerView, error) {
	d, err := p.Dealer(roomID)
	if err != nil {
		return nil, err
	}

	return d.PlayerView(token)
}

// ListRooms returns the rooms created within the list window, newest first
func (p *PitBoss) ListRooms() []texasholdem.Summary {
	since := p.clock.Now().Add(-p.options.ListWindow)

	p.lock.RLock()
	dealers := make([]*Dealer, 0, len(p.dealers))
	for _, d := range p.dealers {
		dealers = append(dealers, d)
	}
	p.lock.RUnlock()

	summaries := make([]texasholdem.Summary, 0, len(dealers))
	for _, d := range dealers {
		s := d.Summary()
		if !s.CreatedAt.Before(since) {
			summaries = append(summaries, s)
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].ID < summaries[j].ID
		}

		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	return summaries
}

// Prune removes rooms older than the stale age that are not in the middle of a hand
// The number of rooms removed is returned
func (p *PitBoss) Prune() int {
	cutoff := p.clock.Now().Add(-p.options.StaleAfter)

	p.lock.Lock()
	pruned := make([]*Dealer, 0)
	for id, d := range p.dealers {
		s := d.Summary()
		if s.CreatedAt.Before(cutoff) && s.Status == texasholdem.StatusWaiting {
			delete(p.dealers, id)
			pruned = append(pruned, d)
		}
	}
	p.lock.Unlock()

	for _, d := range pruned {
		d.EndShift("room closed")
		p.logger.WithField("uuid", d.ID()).Info("pruned room")
	}

	return len(pruned)
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) error {
	d, err := p.Dealer(client.roomID)
	if err != nil {
		return err
	}

	return d.AddClient(client)
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	d, err := p.Dealer(client.roomID)
	if err != nil {
		// the room was pruned while the client was connected
		return
	}

	d.RemoveClient(client)
}
