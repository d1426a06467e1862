package room

import "errors"

// ErrRoomNotFound is returned when no room exists with the given id
var ErrRoomNotFound = errors.New("room not found")

// ErrInvalidAnte is returned when a room is created with an ante outside the allowed range
var ErrInvalidAnte = errors.New("invalid ante")
