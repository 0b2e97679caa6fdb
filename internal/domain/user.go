package domain

import (
	"context"
	"time"
)

// User represents a registered user. PasswordHash never leaves the service
// layer; responses use UserProfile, which has no credential field at all.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(email, name, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// UserProfile is the outward projection of a User. It structurally cannot
// carry the password hash, so no endpoint can leak it by forgetting to strip.
// swagger:model UserProfile
type UserProfile struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Interests []*Interest `json:"interests"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Profile converts a User to its password-free projection.
func (u *User) Profile(interests []*Interest) *UserProfile {
	if interests == nil {
		interests = []*Interest{}
	}
	return &UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Interests: interests,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PasswordHasher handles hashing and verification of user passwords.
type PasswordHasher interface {
	Hash(password string) (hash string, err error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateName(ctx context.Context, id, name string) (*User, error)
	// SetInterests replaces the user's interest set with the given interest IDs.
	SetInterests(ctx context.Context, userID string, interestIDs []string) error
	// ListByInterestNames returns up to limit users that have at least one
	// interest whose name is in names, excluding the given user IDs.
	ListByInterestNames(ctx context.Context, names, excludeUserIDs []string, limit int) ([]*User, error)
}

// CreateUserInput carries the fields for user creation.
type CreateUserInput struct {
	Name        string
	Email       string
	Password    string
	InterestIDs []string
}

// UpdateUserInput carries the optional fields for a user update.
// Nil fields are left unchanged; a non-nil InterestIDs replaces the whole set.
type UpdateUserInput struct {
	Name        *string
	InterestIDs []string
}

// UserService defines the business logic for user profiles.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*UserProfile, error)
	GetByID(ctx context.Context, id string) (*UserProfile, error)
	// GetByEmail returns the full user record including the password hash.
	// It exists for the auth service; never serialize its result.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*UserProfile, error)
}

// AuthService defines registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, input CreateUserInput) (*UserProfile, error)
	Login(ctx context.Context, email, password string) (token string, user *UserProfile, err error)
}
