package match

import "errors"

// Engine errors. Controllers map these to HTTP codes with errors.Is; every
// one of them is raised before any state is persisted, so a caller can always
// correct the request and retry.
var (
	ErrInvalidState        = errors.New("operation not allowed in the match's current state")
	ErrTossRequired        = errors.New("toss must be recorded before the match can start")
	ErrTossAlreadySet      = errors.New("toss has already been recorded for this match")
	ErrMatchNotLive        = errors.New("balls can only be recorded for a live match")
	ErrMissingFields       = errors.New("striker, bowler and over/ball position are required")
	ErrInsufficientPlayers = errors.New("not enough eligible players to form two teams")
)
