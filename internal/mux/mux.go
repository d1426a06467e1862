package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"holdem-server/pkg/room"
)

const roomIDPattern = "{id:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/room").Handler(this.getRoom())
	r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

	rr := r.PathPrefix("/room/" + roomIDPattern).Subrouter()
	rr.Methods(http.MethodPost).Path("/join").Handler(this.postRoomJoin())

	pr := rr.PathPrefix("/player/{token}").Subrouter()
	pr.Methods(http.MethodGet).Path("").Handler(this.getRoomPlayer())
	pr.Methods(http.MethodPost).Path("/ready").Handler(this.postRoomPlayerReady())
	pr.Methods(http.MethodPost).Path("/action").Handler(this.postRoomPlayerAction())
	pr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomPlayerWS())

	return this
}
