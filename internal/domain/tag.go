package domain

import "context"

// Tag represents a free-form label attached to events, deduplicated by name.
// swagger:model Tag
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TagRepository defines storage for tags and event–tag links.
type TagRepository interface {
	// EnsureTagForEvent resolves a tag by name (creating it if missing),
	// links the event to it in event_tags, and returns the tag ID.
	EnsureTagForEvent(ctx context.Context, eventID, tagName string) (tagID string, err error)
	// ReplaceEventTags detaches all tag links for the event and links the
	// given names, connect-or-create per name. Tags themselves are never deleted.
	ReplaceEventTags(ctx context.Context, eventID string, names []string) error
	// ListByEventID returns all tags associated with the given event.
	ListByEventID(ctx context.Context, eventID string) ([]*Tag, error)
}
