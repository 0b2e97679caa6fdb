package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"twototango/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type userService struct {
	userRepo     domain.UserRepository
	interestRepo domain.InterestRepository
	hasher       domain.PasswordHasher
}

// NewUserService creates a UserService with the given repositories and hasher.
func NewUserService(userRepo domain.UserRepository, interestRepo domain.InterestRepository, hasher domain.PasswordHasher) domain.UserService {
	return &userService{
		userRepo:     userRepo,
		interestRepo: interestRepo,
		hasher:       hasher,
	}
}

func (s *userService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.UserProfile, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if !emailRegexp.MatchString(email) {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(email, strings.TrimSpace(input.Name), hash, now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Interest IDs must reference existing interests; there is no
	// connect-or-create for interests, unlike event tags.
	if len(input.InterestIDs) > 0 {
		if err := s.userRepo.SetInterests(ctx, user.ID, input.InterestIDs); err != nil {
			return nil, fmt.Errorf("set user interests: %w", err)
		}
	}

	interests, err := s.interestRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list user interests: %w", err)
	}
	return user.Profile(interests), nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	interests, err := s.interestRepo.ListByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list user interests: %w", err)
	}
	return user.Profile(interests), nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		user, err = s.userRepo.UpdateName(ctx, id, name)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("update user name: %w", err)
		}
	}

	// A supplied interest-id list replaces the whole set; it is never merged.
	if input.InterestIDs != nil {
		if err := s.userRepo.SetInterests(ctx, id, input.InterestIDs); err != nil {
			return nil, fmt.Errorf("set user interests: %w", err)
		}
	}

	interests, err := s.interestRepo.ListByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list user interests: %w", err)
	}
	return user.Profile(interests), nil
}
