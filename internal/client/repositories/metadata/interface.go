// Package metadata stores small client-side key/value state that must survive
// restarts, such as the session token and username.
package metadata

import (
	"context"
)

// Keys currently in use.
const (
	KeyToken    = "token"
	KeyUsername = "username"
)

type Repository interface {
	// Get returns the stored value or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key. Used on logout.
	Clear(ctx context.Context) error
}
