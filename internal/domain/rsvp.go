package domain

import (
	"context"
	"time"
)

// RSVP links one user to one event. At most one row exists per
// (user, event) pair; presence of the row means attendance.
// swagger:model RSVP
type RSVP struct {
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRSVP creates a new RSVP for the given user and event.
func NewRSVP(eventID, userID string, createdAt time.Time) *RSVP {
	return &RSVP{
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: createdAt,
	}
}

// RSVPRepository defines storage operations for RSVP rows.
type RSVPRepository interface {
	Create(ctx context.Context, rsvp *RSVP) error
	Delete(ctx context.Context, eventID, userID string) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*RSVP, error)
	// ListAttendeesByEventID returns the users that RSVP'd to the event.
	ListAttendeesByEventID(ctx context.Context, eventID string) ([]*User, error)
	// ListUserIDsByEventID returns just the user IDs that RSVP'd to the event.
	ListUserIDsByEventID(ctx context.Context, eventID string) ([]string, error)
}
