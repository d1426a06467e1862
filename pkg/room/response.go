package room

import (
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/texasholdem"
)

// response keys sent to websocket clients
const (
	keyView       = "view"
	keyRoomClosed = "roomClosed"
)

func newViewResponse(view *texasholdem.PlayerView) *playable.Response {
	return &playable.Response{
		Key:  keyView,
		Data: view,
	}
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return playable.ErrorResponse(err, ctx)
}
