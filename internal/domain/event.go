package domain

import (
	"context"
	"time"
)

// Event represents a scheduled gathering owned by its creator.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	CreatorID   string    `json:"creatorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, description, location string, date time.Time, creatorID string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Location:    location,
		Date:        date,
		CreatorID:   creatorID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// Organizer is the creator of an event as shown in event projections:
// a password-free user plus the IDs of their interests.
type Organizer struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Interests []string `json:"interests"`
}

// EventView is the denormalized event projection the API serves. The
// organizer and attendee fields are computed on read, never stored.
// swagger:model EventView
type EventView struct {
	*Event
	OrganizerID string         `json:"organizerId"`
	Organizer   *Organizer     `json:"organizer"`
	Attendees   []*UserProfile `json:"attendees"`
	Tags        []*Tag         `json:"tags"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns all events ordered by ascending date.
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, eventID string, title, description, location *string, date *time.Time) (*Event, error)
	// DeleteWithTags detaches all tag links and deletes the event row in a
	// single transaction. RSVP rows go with the event via cascade.
	DeleteWithTags(ctx context.Context, id string) error
}

// CreateEventInput carries the fields for event creation.
type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	Date        time.Time
	Tags        []string
}

// UpdateEventInput carries the optional fields for an event update.
// Nil fields are left unchanged; a non-nil Tags replaces the whole tag set.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Location    *string
	Date        *time.Time
	Tags        []string
}

// EventService defines the business logic for events, RSVPs, and attendee suggestions.
type EventService interface {
	Create(ctx context.Context, input CreateEventInput, creatorID string) (*EventView, error)
	List(ctx context.Context) ([]*EventView, error)
	GetByID(ctx context.Context, id string) (*EventView, error)
	Update(ctx context.Context, id string, input UpdateEventInput, userID string) (*EventView, error)
	Delete(ctx context.Context, id, userID string) error
	// ToggleRSVP creates the RSVP if absent and deletes it if present.
	// Returns true when the user is attending after the call.
	ToggleRSVP(ctx context.Context, eventID, userID string) (attending bool, err error)
	// SuggestedAttendees returns up to 10 users whose interest names overlap
	// the event's tag names and who have not RSVP'd.
	SuggestedAttendees(ctx context.Context, eventID string) ([]*UserProfile, error)
}
