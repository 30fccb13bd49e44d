package game

import "errors"

var (
	// ErrDuplicateSession is returned when a user tries to start a game
	// while one is already active
	ErrDuplicateSession = errors.New("user already has an active game")

	// ErrNoActiveSession is returned when an operation targets a user
	// with no active game
	ErrNoActiveSession = errors.New("no active game for user")

	// ErrWordMismatch is returned when a submitted answer references a
	// word other than the last one thrown to the user
	ErrWordMismatch = errors.New("word was not thrown by the game")

	// ErrDuplicatePair is returned when a user resubmits a word pair
	// already credited to them in the current round
	ErrDuplicatePair = errors.New("word pair already played this round")
)
