package events

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

type fakeRepo struct {
	events     map[uuid.UUID]*Event
	categories []EventCategory
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: make(map[uuid.UUID]*Event)}
}

func (f *fakeRepo) Create(_ context.Context, event *Event) error {
	event.ID = uuid.New()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, query EventListQuery) ([]Event, int64, error) {
	var matched []Event
	for _, event := range f.events {
		if query.Status != "" && string(event.Status) != query.Status {
			continue
		}
		if query.City != "" && event.City != query.City {
			continue
		}
		if query.AwardsOnly && !event.IsAwardEvent {
			continue
		}
		if query.FreeOnly && !event.IsFree {
			continue
		}
		matched = append(matched, *event)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].StartTime.Before(matched[j].StartTime)
	})

	total := int64(len(matched))
	start := (query.Page - 1) * query.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + query.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeRepo) ListUpcoming(_ context.Context, limit int) ([]Event, error) {
	results, _, err := f.List(context.Background(), EventListQuery{
		Page: 1, Limit: limit, Status: string(StatusPublished),
	})
	return results, err
}

func (f *fakeRepo) ListByOrganizer(_ context.Context, organizerID uuid.UUID, page, limit int) ([]Event, int64, error) {
	var matched []Event
	for _, event := range f.events {
		if event.OrganizerID == organizerID {
			matched = append(matched, *event)
		}
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeRepo) Update(_ context.Context, event *Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return ErrEventNotFound
	}
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status Status) error {
	event, ok := f.events[id]
	if !ok {
		return ErrEventNotFound
	}
	event.Status = status
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeRepo) ListCategories(_ context.Context) ([]EventCategory, error) {
	return f.categories, nil
}

func (f *fakeRepo) CreateCategory(_ context.Context, category *EventCategory) error {
	category.ID = uuid.New()
	f.categories = append(f.categories, *category)
	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) error { return cache.ErrCacheMiss }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (noopCache) Delete(context.Context, string) error        { return nil }
func (noopCache) DeletePattern(context.Context, string) error { return nil }
func (noopCache) Exists(context.Context, string) bool         { return false }
func (noopCache) Ping(context.Context) error                  { return nil }

func (noopCache) GetOrSet(_ context.Context, _ string, _ time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	data, err := fetcher()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func newTestService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	return NewService(repo, noopCache{}, logger.New()), repo
}

func seedEvent(t *testing.T, svc Service, organizerID uuid.UUID, title string) *EventResponse {
	t.Helper()
	start := time.Now().Add(72 * time.Hour)
	resp, err := svc.CreateEvent(context.Background(), organizerID, CreateEventRequest{
		Title:     title,
		City:      "Lagos",
		StartTime: start,
		EndTime:   start.Add(4 * time.Hour),
		DressCode: "Smart casual",
	})
	require.NoError(t, err)
	return resp
}

func TestCreateEventDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	resp := seedEvent(t, svc, uuid.New(), "Lagos Tech Summit")

	assert.Equal(t, StatusDraft, resp.Status)
	assert.Equal(t, "Nigeria", resp.Country)
	assert.Equal(t, "Smart casual", resp.DressCode)
	assert.NotEmpty(t, resp.ID)
}

func TestUpdateEventRequiresOwnership(t *testing.T) {
	svc, repo := newTestService(t)
	organizerID := uuid.New()
	resp := seedEvent(t, svc, organizerID, "Owners Only")
	eventID := uuid.MustParse(resp.ID)

	newTitle := "Hijacked"
	_, err := svc.UpdateEvent(context.Background(), eventID, uuid.New(), false, UpdateEventRequest{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotEventOwner)
	assert.Equal(t, "Owners Only", repo.events[eventID].Title)

	// Admins can edit any event.
	updated, err := svc.UpdateEvent(context.Background(), eventID, uuid.New(), true, UpdateEventRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Hijacked", updated.Title)
}

func TestUpdateEventAppliesPartialFields(t *testing.T) {
	svc, _ := newTestService(t)
	organizerID := uuid.New()
	resp := seedEvent(t, svc, organizerID, "Partial Update")
	eventID := uuid.MustParse(resp.ID)

	dressCode := "Black tie"
	updated, err := svc.UpdateEvent(context.Background(), eventID, organizerID, false, UpdateEventRequest{
		DressCode: &dressCode,
		Tags:      []string{"awards", "gala"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Black tie", updated.DressCode)
	assert.Equal(t, []string{"awards", "gala"}, updated.Tags)
	assert.Equal(t, "Partial Update", updated.Title)
	assert.Equal(t, "Lagos", updated.City)
}

func TestPublishEventOnlyFromDraft(t *testing.T) {
	svc, repo := newTestService(t)
	organizerID := uuid.New()
	resp := seedEvent(t, svc, organizerID, "Going Live")
	eventID := uuid.MustParse(resp.ID)

	require.NoError(t, svc.PublishEvent(context.Background(), eventID, organizerID, false))
	assert.Equal(t, StatusPublished, repo.events[eventID].Status)

	err := svc.PublishEvent(context.Background(), eventID, organizerID, false)
	assert.ErrorIs(t, err, ErrEventNotEditable)
}

func TestDeletePublishedEventRefused(t *testing.T) {
	svc, repo := newTestService(t)
	organizerID := uuid.New()
	resp := seedEvent(t, svc, organizerID, "Sold Out Show")
	eventID := uuid.MustParse(resp.ID)

	require.NoError(t, svc.PublishEvent(context.Background(), eventID, organizerID, false))

	err := svc.DeleteEvent(context.Background(), eventID, organizerID, false)
	assert.ErrorIs(t, err, ErrEventNotEditable)

	// Cancelling keeps the row for booking history.
	require.NoError(t, svc.CancelEvent(context.Background(), eventID, organizerID, false))
	assert.Equal(t, StatusCancelled, repo.events[eventID].Status)
}

func TestDeleteDraftEvent(t *testing.T) {
	svc, repo := newTestService(t)
	organizerID := uuid.New()
	resp := seedEvent(t, svc, organizerID, "Never Happened")
	eventID := uuid.MustParse(resp.ID)

	require.NoError(t, svc.DeleteEvent(context.Background(), eventID, organizerID, false))
	assert.NotContains(t, repo.events, eventID)

	_, err := svc.GetEvent(context.Background(), eventID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestListEventsNormalizesPaging(t *testing.T) {
	svc, _ := newTestService(t)
	organizerID := uuid.New()
	seedEvent(t, svc, organizerID, "First")
	seedEvent(t, svc, organizerID, "Second")

	result, err := svc.ListEvents(context.Background(), EventListQuery{Page: 0, Limit: 0})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, int64(2), result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.Len(t, result.Events, 2)
}
