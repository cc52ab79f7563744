package ports

import (
	"context"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// AuthService implements signup and login. Both return a freshly issued
// bearer token alongside the user: tokens are re-issued on every successful
// call, never reused.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
