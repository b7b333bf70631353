package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vitrine/internal/domain/repository/session"
)

// ErrInvalidCredentials reports a failed login or an unknown session token.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Auth issues and verifies admin sessions against the single configured
// admin identity.
type Auth struct {
	sessions session.Store
	email    string
	password string
	ttl      time.Duration
}

func NewAuth(sessions session.Store, email, password string, ttl time.Duration) *Auth {
	return &Auth{
		sessions: sessions,
		email:    email,
		password: password,
		ttl:      ttl,
	}
}

// Login checks the credentials in constant time and, on success, stores a
// fresh opaque token with the configured TTL.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.email))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	if emailOK&passwordOK != 1 {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := a.sessions.Put(ctx, token, email, a.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Logout drops the session. Unknown tokens are not an error.
func (a *Auth) Logout(ctx context.Context, token string) error {
	if err := a.sessions.Delete(ctx, token); err != nil && !errors.Is(err, session.ErrNotFound) {
		return fmt.Errorf("drop session: %w", err)
	}

	return nil
}

// Verify resolves a bearer token to the authenticated identity.
func (a *Auth) Verify(ctx context.Context, token string) (string, error) {
	identity, err := a.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", fmt.Errorf("verify session: %w", err)
	}

	return identity, nil
}
