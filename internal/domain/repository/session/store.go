package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports an unknown or expired session token.
var ErrNotFound = errors.New("session not found")

// Store keeps admin sessions: opaque token to authenticated identity, expiring
// after a configured TTL.
type Store interface {
	Put(ctx context.Context, token, identity string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
