// Package directory provides the static demo credential set and seeds it
// into an empty credential store at process start.
package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"goat-dashboard/internal/domain"
	"goat-dashboard/internal/repository"
)

// Defaults is the built-in directory: one user per portal. Password hashes
// are derived at seed time from the configured demo password.
func Defaults() []domain.User {
	return []domain.User{
		{
			Email:          "demo@goatmedia.com",
			Role:           domain.RoleGeneral,
			Name:           "Demo User",
			Department:     "Media",
			Designation:    "Guest",
			ProfilePicture: "",
			JoinDate:       "2024-01-02",
		},
		{
			Email:          "employee@goatmedia.com",
			Role:           domain.RoleEmployee,
			Name:           "Jordan Reyes",
			Department:     "Production",
			Designation:    "Content Producer",
			ProfilePicture: "s3://goat-dashboard-assets/avatars/employee.png",
			JoinDate:       "2023-06-12",
		},
		{
			Email:          "executive@goatmedia.com",
			Role:           domain.RoleExecutive,
			Name:           "Avery Collins",
			Department:     "Leadership",
			Designation:    "Chief Executive Officer",
			ProfilePicture: "s3://goat-dashboard-assets/avatars/executive.png",
			JoinDate:       "2021-03-01",
		},
	}
}

// Seed inserts the given users into an empty store. A non-empty store is left
// untouched so identifiers stay stable across restarts. The directory is
// fixed after this point; nothing in the process writes users later.
func Seed(ctx context.Context, repo repository.UserRepository, users []domain.User, password string) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	for i := range users {
		user := users[i]
		user.ID = uuid.NewString()
		user.PasswordHash = string(hash)
		if err := repo.Create(ctx, &user); err != nil {
			return fmt.Errorf("seed user %s: %w", user.Email, err)
		}
	}
	return nil
}
