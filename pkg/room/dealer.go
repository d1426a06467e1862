package room

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/texasholdem"
)

// Dealer owns the state of one room
// Every call into the round goes through the dealer's lock, so only one action is ever applied at
// a time. Views are handed to clients and the notifier without waiting on them.
type Dealer struct {
	logger   logrus.FieldLogger
	round    *texasholdem.Round
	notifier Notifier
	lock     sync.Mutex

	clients     map[*Client]bool
	clientsLock sync.RWMutex
}

// NewDealer creates a new dealer for the round
func NewDealer(logger logrus.FieldLogger, round *texasholdem.Round, notifier Notifier) *Dealer {
	if notifier == nil {
		notifier = nopNotifier{}
	}

	return &Dealer{
		logger:   logger.WithField("uuid", round.ID()),
		round:    round,
		notifier: notifier,
		clients:  make(map[*Client]bool),
	}
}

// ID returns the room id
func (d *Dealer) ID() string {
	return d.round.ID()
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.clientsLock.RLock()
	defer d.clientsLock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient adds a client and sends it the current view
func (d *Dealer) AddClient(client *Client) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	view, err := d.round.PlayerView(client.token)
	if err != nil {
		return err
	}

	d.clientsLock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.clientsLock.Unlock()

	client.Send(newViewResponse(view))
	d.logger.WithField("client", client.String()).Debug("client connected")
	return nil
}

// RemoveClient removes a client
// lastClient is true when nobody else is connected
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.clientsLock.Lock()
	defer d.clientsLock.Unlock()

	delete(d.clients, client)
	d.logger.WithField("client", client.String()).Debug("client disconnected")
	return len(d.clients) == 0
}

// EndShift closes every client connection
func (d *Dealer) EndShift(reason string) {
	for _, client := range d.Clients() {
		client.Send(&playable.Response{Key: keyRoomClosed, Value: reason})
		client.Close(reason)
	}
}

// Join seats a player
func (d *Dealer) Join(name string, balance int) (texasholdem.Credentials, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	creds, err := d.round.Join(name, balance)
	if err != nil {
		return creds, err
	}

	d.stateChanged()
	return creds, nil
}

// Ready marks the player as ready, and starts the hand once everybody is
func (d *Dealer) Ready(token string) (bool, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	started, err := d.round.Ready(token)
	if err != nil {
		return false, err
	}

	d.stateChanged()
	return started, nil
}

// SubmitAction applies a betting action
func (d *Dealer) SubmitAction(token, actionType string, amount int) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if err := d.round.SubmitAction(token, actionType, amount); err != nil {
		return err
	}

	d.stateChanged()
	return nil
}

// PlayerView returns the view for the player who owns the token
func (d *Dealer) PlayerView(token string) (*texasholdem.PlayerView, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.round.PlayerView(token)
}

// Summary returns an overview of the room
func (d *Dealer) Summary() texasholdem.Summary {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.round.Summary()
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	var err error
	switch msg.Action {
	case "ready":
		_, err = d.Ready(c.token)
	case "view":
		var view *texasholdem.PlayerView
		if view, err = d.PlayerView(c.token); err == nil {
			c.Send(newViewResponse(view))
			return
		}
	default:
		amount, _ := msg.AdditionalData.GetInt("amount")
		err = d.SubmitAction(c.token, msg.Action, amount)
	}

	if err != nil {
		d.logger.WithError(err).WithField("client", c.String()).Info("could not perform action")
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(playable.OK(msg.Context))
}

// stateChanged pushes fresh views to everybody watching the room
// NOTE: must be called with the lock held
func (d *Dealer) stateChanged() {
	start := time.Now()

	for _, client := range d.Clients() {
		view, err := d.round.PlayerView(client.token)
		if err != nil {
			// the player was removed from the table
			client.Send(newErrorResponse("", err))
			client.Close(err.Error())
			continue
		}

		if !client.Send(newViewResponse(view)) {
			d.logger.WithField("client", client.String()).Warn("client is not keeping up, dropped view")
		}
	}

	for _, token := range d.round.Tokens() {
		view, err := d.round.PlayerView(token)
		if err != nil {
			d.logger.WithError(err).Error("could not build view")
			continue
		}

		d.notifier.PublishView(d.round.ID(), view)
	}

	d.notifier.PublishSummary(d.round.Summary())
	d.logger.WithField("elapsed", time.Since(start)).Debug("state changed")
}
