package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound is returned when a referenced event or comment does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller lacks permission for the requested mutation.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated is returned when a mutation requires a signed-in caller and none is present.
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError reports a missing, malformed, or oversized field.
// It is always recoverable by correcting the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a document store failure. The core performs no automatic
// retry; callers decide whether the operation is safe to reissue.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
