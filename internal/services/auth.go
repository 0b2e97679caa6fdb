package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"twototango/internal/domain"
)

const minPasswordLen = 6

type authService struct {
	users       domain.UserService
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService on top of the user service.
func NewAuthService(users domain.UserService, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		users:       users,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.UserProfile, error) {
	if len(input.Password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	return s.users.Create(ctx, input)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.UserProfile, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	profile, err := s.users.GetByID(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("load profile: %w", err)
	}
	return token, profile, nil
}
