package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/careerpilot/advisor-api/internal/core/domain"
	"github.com/careerpilot/advisor-api/internal/core/ports"
)

// AuthService implements signup and login against a UserRepository.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenIssuer
}

func NewAuthService(repo ports.UserRepository, tokens *TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Signup creates a new account and returns it with a fresh token. The email
// is the unique key: a duplicate fails with domain.ErrDuplicateEmail and
// leaves the store untouched.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login verifies credentials and returns the user with a newly issued token.
// A missing record and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
