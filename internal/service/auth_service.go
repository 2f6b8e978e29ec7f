package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"goat-dashboard/internal/domain"
	"goat-dashboard/internal/repository"
	"goat-dashboard/internal/token"
)

// ErrInvalidCredentials indicates that provided login credentials are incorrect.
// It is returned for an unknown email and for a wrong password alike, so the
// response carries no signal about which check failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthResult is what a successful login hands back to the caller.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService authenticates directory users and issues session tokens.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	users repository.UserRepository
	codec *token.Codec
	ttl   time.Duration
}

func NewAuthService(users repository.UserRepository, codec *token.Codec, ttl time.Duration) AuthService {
	if ttl <= 0 {
		ttl = token.DefaultTTL
	}
	return &authService{
		users: users,
		codec: codec,
		ttl:   ttl,
	}
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(token.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, s.ttl)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token: signed,
		User:  user.Public(),
	}, nil
}
