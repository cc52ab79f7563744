// Package memory holds the non-durable reference implementation of the user
// store. Records live in keyed maps (email and id) and vanish on restart;
// production deployments select the MongoDB repository instead.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// UserRepository is an in-memory, mutex-guarded user store. IDs are
// monotonically increasing counters, unique per process lifetime.
type UserRepository struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	nextID  uint64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
		nextID:  1,
	}
}

func clone(u *domain.User) *domain.User {
	c := *u
	return &c
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}

	created := clone(user)
	created.ID = strconv.FormatUint(r.nextID, 10)
	r.nextID++

	stored := clone(created)
	r.byEmail[stored.Email] = stored
	r.byID[stored.ID] = stored
	return created, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clone(u), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clone(u), nil
}

// Update overwrites the stored record. Email is immutable through this path:
// the stored email wins so the email index can never go stale.
func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	updated := clone(user)
	updated.Email = stored.Email
	*stored = *updated
	return clone(stored), nil
}
