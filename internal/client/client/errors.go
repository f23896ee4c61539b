package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("already exists")

	// ErrNotLoggedIn is returned by calls that need a session when none is held.
	ErrNotLoggedIn = errors.New("not logged in")
)
