// Package common defines shared constants and sentinel errors used across
// the journal client layers. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrOffline is returned by a forced sync pass attempted while the
	// network is unreachable. Best-effort passes return nil instead.
	ErrOffline = errors.New("offline: cannot sync journal entries")

	// Auth errors (missing, invalid or expired token).
	ErrUnauthorized = errors.New("unauthorized")
)

// StorageError wraps a failure of the local durable store (quota, I/O,
// corruption). It is never retried by the core; callers surface it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err with the failed operation name. Returns nil if
// err is nil so repositories can wrap unconditionally.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
