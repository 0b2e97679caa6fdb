package services

import (
	"context"
	"fmt"
	"time"

	"twototango/internal/domain"
)

// In-memory fakes for the domain repository interfaces. They keep insertion
// order so tests stay deterministic.

type fakeEventRepo struct {
	events      map[string]*domain.Event
	order       []string
	nextID      int
	deleteCalls int
	deleteErr   error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*domain.Event{}}
}

func (r *fakeEventRepo) add(e *domain.Event) {
	r.events[e.ID] = e
	r.order = append(r.order, e.ID)
}

func (r *fakeEventRepo) Create(_ context.Context, e *domain.Event) error {
	r.nextID++
	e.ID = fmt.Sprintf("ev-%d", r.nextID)
	r.add(e)
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (r *fakeEventRepo) List(_ context.Context) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0, len(r.order))
	for _, id := range r.order {
		events = append(events, r.events[id])
	}
	return events, nil
}

func (r *fakeEventRepo) Update(_ context.Context, eventID string, title, description, location *string, date *time.Time) (*domain.Event, error) {
	e, ok := r.events[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if title != nil {
		e.Title = *title
	}
	if description != nil {
		e.Description = *description
	}
	if location != nil {
		e.Location = *location
	}
	if date != nil {
		e.Date = *date
	}
	e.UpdatedAt = time.Now()
	return e, nil
}

func (r *fakeEventRepo) DeleteWithTags(_ context.Context, id string) error {
	r.deleteCalls++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.events, id)
	for i, eventID := range r.order {
		if eventID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeTagRepo struct {
	tagsByEvent  map[string][]*domain.Tag
	nextID       int
	replaceCalls map[string][][]string
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{
		tagsByEvent:  map[string][]*domain.Tag{},
		replaceCalls: map[string][][]string{},
	}
}

func (r *fakeTagRepo) EnsureTagForEvent(_ context.Context, eventID, tagName string) (string, error) {
	for _, tag := range r.tagsByEvent[eventID] {
		if tag.Name == tagName {
			return tag.ID, nil
		}
	}
	r.nextID++
	tag := &domain.Tag{ID: fmt.Sprintf("tag-%d", r.nextID), Name: tagName}
	r.tagsByEvent[eventID] = append(r.tagsByEvent[eventID], tag)
	return tag.ID, nil
}

func (r *fakeTagRepo) ReplaceEventTags(ctx context.Context, eventID string, names []string) error {
	r.replaceCalls[eventID] = append(r.replaceCalls[eventID], names)
	r.tagsByEvent[eventID] = nil
	for _, name := range names {
		if _, err := r.EnsureTagForEvent(ctx, eventID, name); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeTagRepo) ListByEventID(_ context.Context, eventID string) ([]*domain.Tag, error) {
	tags := r.tagsByEvent[eventID]
	if tags == nil {
		tags = []*domain.Tag{}
	}
	return tags, nil
}

type fakeRSVPRepo struct {
	rows      map[string]*domain.RSVP
	order     []string
	users     map[string]*domain.User
	createErr error
}

func newFakeRSVPRepo(users map[string]*domain.User) *fakeRSVPRepo {
	return &fakeRSVPRepo{rows: map[string]*domain.RSVP{}, users: users}
}

func rsvpKey(eventID, userID string) string { return eventID + "|" + userID }

func (r *fakeRSVPRepo) Create(_ context.Context, rsvp *domain.RSVP) error {
	if r.createErr != nil {
		return r.createErr
	}
	key := rsvpKey(rsvp.EventID, rsvp.UserID)
	if _, ok := r.rows[key]; ok {
		return domain.ErrConflict
	}
	r.rows[key] = rsvp
	r.order = append(r.order, key)
	return nil
}

func (r *fakeRSVPRepo) Delete(_ context.Context, eventID, userID string) error {
	key := rsvpKey(eventID, userID)
	if _, ok := r.rows[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeRSVPRepo) GetByEventAndUser(_ context.Context, eventID, userID string) (*domain.RSVP, error) {
	rsvp, ok := r.rows[rsvpKey(eventID, userID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rsvp, nil
}

func (r *fakeRSVPRepo) ListAttendeesByEventID(_ context.Context, eventID string) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	for _, key := range r.order {
		rsvp := r.rows[key]
		if rsvp.EventID != eventID {
			continue
		}
		if u, ok := r.users[rsvp.UserID]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *fakeRSVPRepo) ListUserIDsByEventID(_ context.Context, eventID string) ([]string, error) {
	ids := make([]string, 0)
	for _, key := range r.order {
		if rsvp := r.rows[key]; rsvp.EventID == eventID {
			ids = append(ids, rsvp.UserID)
		}
	}
	return ids, nil
}

type fakeUserRepo struct {
	users           map[string]*domain.User
	order           []string
	interestsByUser map[string][]*domain.Interest
	setInterests    map[string][]string
	lastLimit       int
	nextID          int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:           map[string]*domain.User{},
		interestsByUser: map[string][]*domain.Interest{},
		setInterests:    map[string][]string{},
	}
}

func (r *fakeUserRepo) add(u *domain.User, interests ...*domain.Interest) {
	r.users[u.ID] = u
	r.order = append(r.order, u.ID)
	r.interestsByUser[u.ID] = interests
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, id := range r.order {
		if r.users[id].Email == u.Email {
			return domain.ErrConflict
		}
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	r.add(u)
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, id := range r.order {
		if r.users[id].Email == email {
			return r.users[id], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateName(_ context.Context, id, name string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Name = name
	return u, nil
}

func (r *fakeUserRepo) SetInterests(_ context.Context, userID string, interestIDs []string) error {
	r.setInterests[userID] = interestIDs
	return nil
}

func (r *fakeUserRepo) ListByInterestNames(_ context.Context, names, excludeUserIDs []string, limit int) ([]*domain.User, error) {
	r.lastLimit = limit
	wanted := map[string]bool{}
	for _, name := range names {
		wanted[name] = true
	}
	excluded := map[string]bool{}
	for _, id := range excludeUserIDs {
		excluded[id] = true
	}
	users := make([]*domain.User, 0)
	for _, id := range r.order {
		if excluded[id] || len(users) >= limit {
			continue
		}
		for _, interest := range r.interestsByUser[id] {
			if wanted[interest.Name] {
				users = append(users, r.users[id])
				break
			}
		}
	}
	return users, nil
}

type fakeInterestRepo struct {
	interests map[string]*domain.Interest
	order     []string
	byUser    map[string][]*domain.Interest
	createErr error
	nextID    int
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{
		interests: map[string]*domain.Interest{},
		byUser:    map[string][]*domain.Interest{},
	}
}

func (r *fakeInterestRepo) Create(_ context.Context, interest *domain.Interest) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, id := range r.order {
		if r.interests[id].Name == interest.Name {
			return domain.ErrConflict
		}
	}
	r.nextID++
	interest.ID = fmt.Sprintf("int-%d", r.nextID)
	r.interests[interest.ID] = interest
	r.order = append(r.order, interest.ID)
	return nil
}

func (r *fakeInterestRepo) GetByID(_ context.Context, id string) (*domain.Interest, error) {
	interest, ok := r.interests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return interest, nil
}

func (r *fakeInterestRepo) List(_ context.Context) ([]*domain.Interest, error) {
	interests := make([]*domain.Interest, 0, len(r.order))
	for _, id := range r.order {
		interests = append(interests, r.interests[id])
	}
	return interests, nil
}

func (r *fakeInterestRepo) ListByUserID(_ context.Context, userID string) ([]*domain.Interest, error) {
	interests := r.byUser[userID]
	if interests == nil {
		interests = []*domain.Interest{}
	}
	return interests, nil
}

type fakeEmailService struct {
	sent []*domain.RSVPConfirmationEmailData
	err  error
}

func (s *fakeEmailService) SendRSVPConfirmation(_ context.Context, data *domain.RSVPConfirmationEmailData) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, data)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Issue(userID, _ string, _ time.Duration) (string, error) {
	return "token-" + userID, nil
}
