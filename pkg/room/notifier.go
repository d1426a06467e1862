package room

import "holdem-server/pkg/playable/poker/texasholdem"

// Notifier is told about every state change of a room
// Implementations must not block.
type Notifier interface {
	PublishView(roomID string, view *texasholdem.PlayerView)
	PublishSummary(summary texasholdem.Summary)
}

type nopNotifier struct{}

func (nopNotifier) PublishView(string, *texasholdem.PlayerView) {}

func (nopNotifier) PublishSummary(texasholdem.Summary) {}
