package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"goat-dashboard/internal/domain"
	"goat-dashboard/internal/repository"
)

func newTestRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewUserRepository(db)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("init repo: %v", err)
	}
	return repo
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:           "u-1",
		Email:        "Employee@goatmedia.com",
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleEmployee,
		Name:         "Jordan Reyes",
		Department:   "Production",
		Designation:  "Content Producer",
		JoinDate:     "2023-06-12",
	}
}

func TestCreateAndLookup(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := sampleUser()
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	byEmail, err := repo.GetByEmail(ctx, "Employee@goatmedia.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != user.ID || byEmail.Role != domain.RoleEmployee {
		t.Fatalf("unexpected user: %+v", byEmail)
	}

	byID, err := repo.GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != user.Email {
		t.Fatalf("unexpected email: %q", byID.Email)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d; want 1", count)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, sampleUser()); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.GetByEmail(ctx, "employee@goatmedia.com"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for case-mismatched email, got %v", err)
	}
}

func TestLookupMissingUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.GetByEmail(ctx, "nobody@goatmedia.com"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, sampleUser()); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := sampleUser()
	dup.ID = "u-2"
	if err := repo.Create(ctx, dup); err == nil {
		t.Fatal("expected error for duplicate email")
	}
}
