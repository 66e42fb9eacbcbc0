package admin

import "errors"

var (
	// ErrNotFound is returned when a record id is unknown to the workspace.
	ErrNotFound = errors.New("not found")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid input")
	// ErrConflict is returned when an explicit id is already taken.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized covers bad credentials and unknown or expired sessions.
	ErrUnauthorized = errors.New("unauthorized")
)
