package demo

import "errors"

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrNoPlayers is returned when a session is created without players
var ErrNoPlayers = UserError("at least one player is required")

// ErrHoleCards is returned when the number of hole cards is invalid
var ErrHoleCards = UserError("each player needs at least one hole card")

// ErrNotEnoughCards is returned when a deck cannot cover every hole card and the board
var ErrNotEnoughCards = UserError("not enough cards in the deck for every player")

// ErrUnknownAction is returned by Apply for an action it does not recognize
var ErrUnknownAction = UserError("unknown action")

// ErrSessionNotFound is returned when a session ID is not registered
var ErrSessionNotFound = errors.New("session not found")
