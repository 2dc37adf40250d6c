package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by mandatory shapes on an absent location.
	// There absence means the caller assumed pre-existing state, it is not a normal outcome
	ErrNotFound = errors.New("storage: not found")

	// ErrAlreadyExists is returned by Init on an occupied location
	ErrAlreadyExists = errors.New("storage: already exists")

	errUnexpectedSegments = errors.New("unexpected number of path segments")
)

// decode failures are never silently defaulted: they mean corruption or an
// encoding version mismatch and fail the whole operation

func decodeError(where string, err error) error {
	return fmt.Errorf("storage: decode at '%s': %w", where, err)
}

func storeError(err error) error {
	return fmt.Errorf("storage: store: %w", err)
}
