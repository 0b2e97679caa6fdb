package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"twototango/internal/domain"
)

// suggestedAttendeeLimit caps the suggestion list, matching the API contract.
const suggestedAttendeeLimit = 10

// errEventDeleteFailed hides the storage cause of a failed deletion behind a
// retry-suggesting message. NotFound/Forbidden prechecks bypass it.
var errEventDeleteFailed = errors.New("failed to delete event, please try again")

type eventService struct {
	eventRepo      domain.EventRepository
	tagRepo        domain.TagRepository
	rsvpRepo       domain.RSVPRepository
	userRepo       domain.UserRepository
	interestRepo   domain.InterestRepository
	emailService   domain.EmailService
	contextTimeout time.Duration
}

// NewEventService creates an EventService with the given repositories.
// emailService may be nil; RSVP confirmations are then skipped.
func NewEventService(eventRepo domain.EventRepository,
	tagRepo domain.TagRepository,
	rsvpRepo domain.RSVPRepository,
	userRepo domain.UserRepository,
	interestRepo domain.InterestRepository,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		tagRepo:        tagRepo,
		rsvpRepo:       rsvpRepo,
		userRepo:       userRepo,
		interestRepo:   interestRepo,
		emailService:   emailService,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, input domain.CreateEventInput, creatorID string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if creatorID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	event := domain.NewEvent(input.Title, input.Description, input.Location, input.Date, creatorID, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	for _, name := range input.Tags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := s.tagRepo.EnsureTagForEvent(ctx, event.ID, name); err != nil {
			return nil, fmt.Errorf("attach tag %q: %w", name, err)
		}
	}

	return s.buildView(ctx, event)
}

func (s *eventService) List(ctx context.Context) ([]*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	views := make([]*domain.EventView, 0, len(events))
	for _, event := range events {
		view, err := s.buildView(ctx, event)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.buildView(ctx, event)
}

func (s *eventService) Update(ctx context.Context, id string, input domain.UpdateEventInput, userID string) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.CreatorID != userID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.eventRepo.Update(ctx, id, input.Title, input.Description, input.Location, input.Date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	// A supplied tag list replaces the whole set; it is never merged.
	if input.Tags != nil {
		names := make([]string, 0, len(input.Tags))
		for _, name := range input.Tags {
			name = strings.TrimSpace(name)
			if name != "" {
				names = append(names, name)
			}
		}
		if err := s.tagRepo.ReplaceEventTags(ctx, id, names); err != nil {
			return nil, fmt.Errorf("replace event tags: %w", err)
		}
	}

	return s.buildView(ctx, updated)
}

func (s *eventService) Delete(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.CreatorID != userID {
		return domain.ErrForbidden
	}

	if err := s.eventRepo.DeleteWithTags(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		log.Printf("delete event %s: %v", id, err)
		return errEventDeleteFailed
	}
	return nil
}

func (s *eventService) ToggleRSVP(ctx context.Context, eventID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get event: %w", err)
	}

	// Check-then-act: two concurrent toggles can race, and the unique
	// (user_id, event_id) constraint is the backstop against duplicates.
	_, err = s.rsvpRepo.GetByEventAndUser(ctx, eventID, userID)
	if err == nil {
		if err := s.rsvpRepo.Delete(ctx, eventID, userID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return false, fmt.Errorf("delete rsvp: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("get rsvp: %w", err)
	}

	rsvp := domain.NewRSVP(eventID, userID, time.Now())
	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Lost the race to a concurrent toggle; the row exists.
			return true, nil
		}
		return false, fmt.Errorf("create rsvp: %w", err)
	}

	s.sendRSVPConfirmation(ctx, event, userID)
	return true, nil
}

// sendRSVPConfirmation is best effort: a mail failure never fails the RSVP.
func (s *eventService) sendRSVPConfirmation(ctx context.Context, event *domain.Event, userID string) {
	if s.emailService == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("rsvp confirmation: get user %s: %v", userID, err)
		return
	}
	data := &domain.RSVPConfirmationEmailData{
		Email:         user.Email,
		Name:          user.Name,
		EventTitle:    event.Title,
		EventLocation: event.Location,
		EventDate:     event.Date.Format("Monday, 2 January 2006 15:04"),
	}
	if err := s.emailService.SendRSVPConfirmation(ctx, data); err != nil {
		log.Printf("rsvp confirmation: send to %s: %v", user.Email, err)
	}
}

func (s *eventService) SuggestedAttendees(ctx context.Context, eventID string) ([]*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	tags, err := s.tagRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event tags: %w", err)
	}
	if len(tags) == 0 {
		return []*domain.UserProfile{}, nil
	}
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}

	rsvpUserIDs, err := s.rsvpRepo.ListUserIDsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list rsvp user ids: %w", err)
	}

	users, err := s.userRepo.ListByInterestNames(ctx, names, rsvpUserIDs, suggestedAttendeeLimit)
	if err != nil {
		return nil, fmt.Errorf("list users by interest names: %w", err)
	}

	profiles := make([]*domain.UserProfile, 0, len(users))
	for _, user := range users {
		interests, err := s.interestRepo.ListByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("list user interests: %w", err)
		}
		profiles = append(profiles, user.Profile(interests))
	}
	return profiles, nil
}

// buildView assembles the denormalized projection the frontend consumes:
// flattened organizerId, organizer with interest-id list, attendees, tags.
func (s *eventService) buildView(ctx context.Context, event *domain.Event) (*domain.EventView, error) {
	tags, err := s.tagRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list event tags: %w", err)
	}

	attendeeUsers, err := s.rsvpRepo.ListAttendeesByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	attendees := make([]*domain.UserProfile, 0, len(attendeeUsers))
	for _, user := range attendeeUsers {
		attendees = append(attendees, user.Profile(nil))
	}

	organizer := &domain.Organizer{ID: event.CreatorID, Interests: []string{}}
	creator, err := s.userRepo.GetByID(ctx, event.CreatorID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get creator: %w", err)
		}
	} else {
		organizer.Name = creator.Name
		organizer.Email = creator.Email
		interests, err := s.interestRepo.ListByUserID(ctx, creator.ID)
		if err != nil {
			return nil, fmt.Errorf("list creator interests: %w", err)
		}
		for _, interest := range interests {
			organizer.Interests = append(organizer.Interests, interest.ID)
		}
	}

	return &domain.EventView{
		Event:       event,
		OrganizerID: event.CreatorID,
		Organizer:   organizer,
		Attendees:   attendees,
		Tags:        tags,
	}, nil
}
