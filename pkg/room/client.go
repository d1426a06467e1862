package room

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/playable"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// closed is closed when the server is done with the client
	closed    chan struct{}
	closeOnce sync.Once

	// CloseReason contains the reason why the connection was closed
	CloseReason string

	dealer *Dealer

	roomID string
	token  string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, roomID, token string) *Client {
	return &Client{
		Conn:   conn,
		send:   make(chan interface{}, 256),
		closed: make(chan struct{}),
		roomID: roomID,
		token:  token,
	}
}

// Send sends a message to the web client
// If the client is not keeping up, the message is dropped and false is returned
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// Closed returns a channel that is closed when the server no longer wants the connection
func (c *Client) Closed() <-chan struct{} {
	return c.closed
}

// Close tells the connection to shut down
func (c *Client) Close(reason string) {
	c.closeOnce.Do(func() {
		c.CloseReason = reason
		close(c.closed)
	})
}

// String returns a traceable identifier for the client
// The token is never part of it.
func (c *Client) String() string {
	return fmt.Sprintf("%s:%p", c.roomID, c)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("action", msg.Action).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
