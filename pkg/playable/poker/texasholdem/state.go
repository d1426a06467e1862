package texasholdem

import (
	"encoding/json"
)

// Status is whether a hand is being played
type Status int

// Status constants
const (
	StatusWaiting Status = iota
	StatusInHand
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusInHand:
		return "in_hand"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Phase is the betting round of the current hand
type Phase int

// Phase constants
const (
	PhasePreFlop Phase = iota
	PhaseFlop
	PhaseTurn
	PhaseRiver
)

func (p Phase) String() string {
	switch p {
	case PhasePreFlop:
		return "pre-flop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	}

	return ""
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}
