package texasholdem

import "errors"

// ErrPlayerNotFound is returned when a token does not belong to anybody at the table
var ErrPlayerNotFound = errors.New("player not found")

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// ErrIllegalAction is returned when an action is not permitted in the current state
var ErrIllegalAction = errors.New("action not accepted")

// ErrInsufficientPlayers is returned when a hand is started with fewer than two funded players
var ErrInsufficientPlayers = errors.New("need at least two players with chips")

// ErrTableFull is returned when every seat is taken
var ErrTableFull = errors.New("table is full")

// ErrHandInProgress is returned when the table can only be changed between hands
var ErrHandInProgress = errors.New("a hand is in progress")

// UserError is an error that is safe to show to the player
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// illegal returns an error that wraps ErrIllegalAction with a reason the player can read
func illegal(reason string) error {
	return &actionError{reason: UserError(reason)}
}

type actionError struct {
	reason UserError
}

func (a *actionError) Error() string {
	return ErrIllegalAction.Error() + ": " + a.reason.Error()
}

func (a *actionError) Unwrap() []error {
	return []error{ErrIllegalAction, a.reason}
}
