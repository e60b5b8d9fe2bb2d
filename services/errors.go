package services

import "errors"

var (
	// ErrValidation indicates malformed or semantically invalid input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound indicates an unknown session or question id.
	ErrNotFound = errors.New("not found")
	// ErrNoActiveSession is returned when an operation requires an active
	// session and none is currently activated.
	ErrNoActiveSession = errors.New("no active session found")
	// ErrAlreadyAttempted is returned when an identity submits a session it
	// already holds a result for.
	ErrAlreadyAttempted = errors.New("session already attempted")
	// ErrInsufficientQuestions is returned when a clone request asks for more
	// questions than the source sessions hold.
	ErrInsufficientQuestions = errors.New("not enough questions in source sessions")
)
