package common

import "errors"

// Callers should match these with errors.Is.
var (
	// ErrNoSession is returned by task writes when nobody is signed in.
	ErrNoSession = errors.New("no active session")

	// ErrNotFound is returned when a record does not exist for the current user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus is returned for task statuses outside the known set.
	ErrInvalidStatus = errors.New("invalid task status")
)
