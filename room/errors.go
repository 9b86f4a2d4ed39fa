package room

import "errors"

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrRoomFull       = errors.New("room is full")
	// ErrCodeSpaceExhausted is returned when no free code was found within the retry bound.
	ErrCodeSpaceExhausted = errors.New("no free room code available")
)
