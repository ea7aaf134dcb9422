package history

import "errors"

var (
	// ErrRunNotFound is returned when a run ID does not exist.
	ErrRunNotFound = errors.New("history: run not found")

	// ErrRunExists is returned when creating a run whose ID is taken.
	ErrRunExists = errors.New("history: run already exists")
)
