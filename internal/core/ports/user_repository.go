package ports

import (
	"context"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email is the unique natural key; ID is assigned by the store.
type UserRepository interface {
	// Create stores a new user and returns it with its assigned ID.
	// Fails with domain.ErrDuplicateEmail when the email is already taken,
	// leaving the store unchanged.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update overwrites the stored record with the given one (matched by ID).
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
