package service

import (
	"context"
	"errors"

	"goat-dashboard/internal/domain"
	"goat-dashboard/internal/repository"
	"goat-dashboard/internal/token"
)

// ErrUserNotFound indicates a cryptographically valid token whose subject no
// longer exists in the directory. Distinct from token.ErrInvalidToken so the
// two denials stay observable apart.
var ErrUserNotFound = errors.New("user not found")

// SessionService resolves a session token back to a current directory user.
type SessionService interface {
	Resolve(ctx context.Context, tokenString string) (*domain.User, error)
}

type sessionService struct {
	users repository.UserRepository
	codec *token.Codec
}

func NewSessionService(users repository.UserRepository, codec *token.Codec) SessionService {
	return &sessionService{
		users: users,
		codec: codec,
	}
}

func (s *sessionService) Resolve(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user.Public(), nil
}
