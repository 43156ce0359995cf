package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every NotFoundError.
var ErrNotFound = errors.New("counterpart not found")

// NotFoundError is returned when no candidate file exists for the derived name(s).
type NotFoundError struct {
	// Filename is the opened file's base name for ToSpec lookups and the
	// recovered code filename for ToCode lookups.
	Filename  string
	Direction Direction
}

func (e *NotFoundError) Error() string {
	if e.Direction == ToSpec {
		return fmt.Sprintf("No test file found for file %q", e.Filename)
	}
	return fmt.Sprintf("File %q not found", e.Filename)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
