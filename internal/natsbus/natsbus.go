package natsbus

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/playable/poker/texasholdem"
)

// Conn is the part of a NATS connection the publisher needs
type Conn interface {
	Publish(subject string, data []byte) error
}

// Publisher sends room views to NATS
// Views go to <prefix>.<roomID>.<playerID>, summaries to <prefix>.<roomID>
type Publisher struct {
	conn   Conn
	nc     *nats.Conn
	prefix string
	logger logrus.FieldLogger
}

// Connect dials the NATS server at url
func Connect(logger logrus.FieldLogger, url, prefix string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("holdem-server"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.WithError(err).Warn("disconnected from nats")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.WithField("url", nc.ConnectedUrl()).Info("reconnected to nats")
		}),
	)
	if err != nil {
		return nil, err
	}

	p := New(logger, nc, prefix)
	p.nc = nc
	return p, nil
}

// New returns a publisher that writes to conn
func New(logger logrus.FieldLogger, conn Conn, prefix string) *Publisher {
	return &Publisher{
		conn:   conn,
		prefix: prefix,
		logger: logger,
	}
}

// PublishView publishes a player's view
func (p *Publisher) PublishView(roomID string, view *texasholdem.PlayerView) {
	p.publish(fmt.Sprintf("%s.%s.%s", p.prefix, roomID, view.Player.ID), view)
}

// PublishSummary publishes the overview of a room
func (p *Publisher) PublishSummary(summary texasholdem.Summary) {
	p.publish(fmt.Sprintf("%s.%s", p.prefix, summary.ID), summary)
}

// publish hands the message to the client library, which buffers it
func (p *Publisher) publish(subject string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		p.logger.WithError(err).WithField("subject", subject).Error("could not encode message")
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.WithError(err).WithField("subject", subject).Warn("could not publish message")
	}
}

// Close flushes pending messages and closes the connection
func (p *Publisher) Close() error {
	if p.nc == nil {
		return nil
	}

	return p.nc.Drain()
}
