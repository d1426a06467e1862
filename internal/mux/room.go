package mux

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (m *Mux) getRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.pitBoss.ListRooms())
	}
}

type postRoomPayload struct {
	Ante int `json:"ante"`
}

type postRoomResponse struct {
	ID string `json:"id"`
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRoomPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		id, err := m.pitBoss.CreateRoom(pp.Ante)
		if err != nil {
			writeRoomError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, postRoomResponse{ID: id})
	}
}

type postRoomJoinPayload struct {
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

func (m *Mux) postRoomJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRoomJoinPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		creds, err := m.pitBoss.JoinRoom(mux.Vars(r)["id"], pp.Name, pp.Balance)
		if err != nil {
			writeRoomError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, creds)
	}
}

func (m *Mux) getRoomPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		view, err := m.pitBoss.PlayerView(vars["id"], vars["token"])
		if err != nil {
			writeRoomError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

type postRoomPlayerReadyResponse struct {
	Started bool `json:"started"`
}

func (m *Mux) postRoomPlayerReady() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		started, err := m.pitBoss.SubmitReady(vars["id"], vars["token"])
		if err != nil {
			writeRoomError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, postRoomPlayerReadyResponse{Started: started})
	}
}

type postRoomPlayerActionPayload struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

func (m *Mux) postRoomPlayerAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRoomPlayerActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		vars := mux.Vars(r)
		if err := m.pitBoss.SubmitAction(vars["id"], vars["token"], pp.Type, pp.Amount); err != nil {
			writeRoomError(w, err)
			return
		}

		view, err := m.pitBoss.PlayerView(vars["id"], vars["token"])
		if err != nil {
			writeRoomError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}
