package domain

import "context"

// Interest represents a free-form label attached to users, deduplicated by
// name. It shares a naming vocabulary with Tag but is a distinct entity.
// swagger:model Interest
type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InterestRepository defines storage for interests and user–interest links.
type InterestRepository interface {
	Create(ctx context.Context, interest *Interest) error
	GetByID(ctx context.Context, id string) (*Interest, error)
	List(ctx context.Context) ([]*Interest, error)
	ListByUserID(ctx context.Context, userID string) ([]*Interest, error)
}

// InterestService defines the business logic for interests.
// Names are sanitized on write and again on read.
type InterestService interface {
	Create(ctx context.Context, name string) (*Interest, error)
	List(ctx context.Context) ([]*Interest, error)
	GetByID(ctx context.Context, id string) (*Interest, error)
}
