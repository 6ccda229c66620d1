package service

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/domain"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/repository"
)

type AuthService struct {
	users  *repository.UserRepository
	tokens *TokenManager
}

func NewAuthService(users *repository.UserRepository, tokens *TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates the user and logs them straight in, returning a session
// token.
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, string, error) {
	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.User{}, "", ErrUsernameTaken
	case errors.Is(err, sql.ErrNoRows):
		// username free
	default:
		return domain.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", err
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return domain.User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		return domain.User{}, err
	}
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, ErrTokenInvalid
		}
		return domain.User{}, err
	}
	return user, nil
}
