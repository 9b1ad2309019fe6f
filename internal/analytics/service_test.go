package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbuka/internal/events"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

type fakeRepo struct {
	stats      map[uuid.UUID]*EventStats
	overview   *PlatformOverview
	daily      []DailyBookingStat
	lastDays   int
	statsCalls int
}

func (f *fakeRepo) GetEventStats(_ context.Context, eventID uuid.UUID) (*EventStats, error) {
	f.statsCalls++
	stats, ok := f.stats[eventID]
	if !ok {
		return &EventStats{EventID: eventID.String()}, nil
	}
	copied := *stats
	return &copied, nil
}

func (f *fakeRepo) GetPlatformOverview(_ context.Context) (*PlatformOverview, error) {
	return f.overview, nil
}

func (f *fakeRepo) GetDailyBookingStats(_ context.Context, days int) ([]DailyBookingStat, error) {
	f.lastDays = days
	return f.daily, nil
}

type fakeEventReader struct {
	events map[uuid.UUID]*events.EventResponse
}

func (f *fakeEventReader) GetEvent(_ context.Context, id uuid.UUID) (*events.EventResponse, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, events.ErrEventNotFound
	}
	return event, nil
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

func newTestService(t *testing.T) (Service, *fakeRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	eventID := uuid.New()
	organizerID := uuid.New()

	reader := &fakeEventReader{events: map[uuid.UUID]*events.EventResponse{
		eventID: {
			ID:          eventID.String(),
			OrganizerID: organizerID.String(),
			Title:       "Lagos Tech Summit 2026",
			Status:      "PUBLISHED",
		},
	}}

	repo := &fakeRepo{
		stats: map[uuid.UUID]*EventStats{
			eventID: {
				EventID:       eventID.String(),
				TicketsSold:   95,
				TicketsTotal:  100,
				TicketRevenue: 1425000,
				VotesCast:     40,
				VoteRevenue:   4000,
				GrossRevenue:  1429000,
			},
		},
		overview: &PlatformOverview{TotalUsers: 6, TotalEvents: 3, GrossRevenue: 1429000},
		daily: []DailyBookingStat{
			{Date: "2026-08-30", Bookings: 3, Revenue: 45000},
		},
	}

	svc := NewService(repo, reader, noopCache{}, logger.New())
	return svc, repo, eventID, organizerID
}

func TestEventStatsForOrganizer(t *testing.T) {
	svc, _, eventID, organizerID := newTestService(t)

	stats, err := svc.GetEventStats(context.Background(), organizerID, false, eventID)
	require.NoError(t, err)

	assert.Equal(t, "Lagos Tech Summit 2026", stats.Title)
	assert.Equal(t, 95, stats.TicketsSold)
	assert.Equal(t, int64(1429000), stats.GrossRevenue)
}

func TestEventStatsRejectsForeignOrganizer(t *testing.T) {
	svc, repo, eventID, _ := newTestService(t)

	_, err := svc.GetEventStats(context.Background(), uuid.New(), false, eventID)
	assert.ErrorIs(t, err, ErrNotEventOwner)
	assert.Zero(t, repo.statsCalls)
}

func TestEventStatsAllowsAdmin(t *testing.T) {
	svc, _, eventID, _ := newTestService(t)

	stats, err := svc.GetEventStats(context.Background(), uuid.New(), true, eventID)
	require.NoError(t, err)
	assert.Equal(t, 95, stats.TicketsSold)
}

func TestEventStatsUnknownEvent(t *testing.T) {
	svc, _, _, organizerID := newTestService(t)

	_, err := svc.GetEventStats(context.Background(), organizerID, false, uuid.New())
	assert.ErrorIs(t, err, events.ErrEventNotFound)
}

func TestDailyStatsClampsDays(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	_, err := svc.GetDailyBookingStats(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 30, repo.lastDays)

	_, err = svc.GetDailyBookingStats(context.Background(), 365)
	require.NoError(t, err)
	assert.Equal(t, 90, repo.lastDays)
}

func TestPlatformOverview(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	overview, err := svc.GetPlatformOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, overview.TotalUsers)
	assert.Equal(t, int64(1429000), overview.GrossRevenue)
}
