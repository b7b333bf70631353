package abstraction

import "context"

// Auth guards the admin API with email/password sessions.
type Auth interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (string, error)
}
