package memory

import (
	"context"
	"testing"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepository()

	a, err := repo.Create(context.Background(), &domain.User{Name: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	b, err := repo.Create(context.Background(), &domain.User{Name: "B", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if a.ID != "1" || b.ID != "2" {
		t.Fatalf("expected ids 1 and 2, got %s and %s", a.ID, b.ID)
	}
}

func TestUserRepository_DuplicateEmailLeavesStoreUnchanged(t *testing.T) {
	repo := NewUserRepository()

	if _, err := repo.Create(context.Background(), &domain.User{Name: "A", Email: "a@example.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := repo.Create(context.Background(), &domain.User{Name: "Imposter", Email: "a@example.com"}); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	stored, err := repo.FindByEmail(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Name != "A" {
		t.Fatalf("store mutated by failed create: %+v", stored)
	}

	// Counter must not have advanced for the failed create.
	next, err := repo.Create(context.Background(), &domain.User{Name: "B", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if next.ID != "2" {
		t.Fatalf("expected id 2, got %s", next.ID)
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	repo := NewUserRepository()
	created, _ := repo.Create(context.Background(), &domain.User{Name: "A", Email: "a@example.com"})

	got, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Email != "a@example.com" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := repo.FindByID(context.Background(), "99"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_UpdatePersistsAndKeepsEmail(t *testing.T) {
	repo := NewUserRepository()
	created, _ := repo.Create(context.Background(), &domain.User{Name: "A", Email: "a@example.com", Skills: "Go"})

	created.Skills = ""
	created.Email = "hijack@example.com"
	updated, err := repo.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Skills != "" {
		t.Fatalf("cleared skills not persisted: %q", updated.Skills)
	}
	if updated.Email != "a@example.com" {
		t.Fatalf("email must be immutable, got %q", updated.Email)
	}

	if _, err := repo.FindByEmail(context.Background(), "a@example.com"); err != nil {
		t.Fatalf("email index went stale: %v", err)
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	created, _ := repo.Create(context.Background(), &domain.User{Name: "A", Email: "a@example.com"})

	created.Name = "mutated"
	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Name != "A" {
		t.Fatalf("caller mutation leaked into store: %q", stored.Name)
	}
}
