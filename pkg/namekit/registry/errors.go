package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for lookups.
var (
	// ErrInvalidArgument is the category of every lookup failure.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyName indicates Lookup was called with an empty name.
	ErrEmptyName = errors.New("name is empty")

	// ErrNotFound indicates no entry is registered under the name.
	ErrNotFound = errors.New("name not found")
)

// LookupError describes a failed Lookup.
// It matches ErrInvalidArgument and its Reason with errors.Is.
type LookupError struct {
	// Name is the name that was requested.
	Name string
	// Reason is ErrEmptyName or ErrNotFound.
	Reason error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidArgument, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %q", ErrInvalidArgument, e.Reason, e.Name)
}

// Unwrap returns both the category and the reason for errors.Is/As support.
func (e *LookupError) Unwrap() []error {
	return []error{ErrInvalidArgument, e.Reason}
}
