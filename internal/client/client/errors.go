package client

import (
	"fmt"
	"net/http"

	"gamelog/internal/common"
)

// RemoteError is any backend failure other than the recognized idempotent
// cases. It keeps the HTTP status so callers can distinguish "not found" from
// everything else.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the backend answered 404. The sync engine treats
// a 404 on delete as success (another client or a prior attempt already
// removed the entry).
func (e *RemoteError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ValidationError marks a payload the server rejected (e.g. a rating on a
// non-completed entry). It is surfaced to the caller, never retried.
type ValidationError struct {
	RemoteError
}

func newStatusError(code int, message string) error {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &ValidationError{RemoteError{StatusCode: code, Message: message}}
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, message)
	default:
		return &RemoteError{StatusCode: code, Message: message}
	}
}
