package venues

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

type fakeRepo struct {
	venues    map[uuid.UUID]*Venue
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{venues: make(map[uuid.UUID]*Venue)}
}

func (f *fakeRepo) Create(venue *Venue) error {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	copied := *venue
	f.venues[venue.ID] = &copied
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Venue, error) {
	venue, ok := f.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	copied := *venue
	return &copied, nil
}

func (f *fakeRepo) List(_ context.Context, query VenueListQuery) ([]Venue, int64, error) {
	f.listCalls++
	var matched []Venue
	for _, venue := range f.venues {
		if query.City != "" && !strings.EqualFold(venue.City, query.City) {
			continue
		}
		if query.MinCapacity > 0 && venue.Capacity < query.MinCapacity {
			continue
		}
		if query.AvailableOnly && !venue.IsAvailable {
			continue
		}
		matched = append(matched, *venue)
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeRepo) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) (*Venue, error) {
	venue, ok := f.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	if city, ok := updates["city"].(string); ok {
		venue.City = city
	}
	if capacity, ok := updates["capacity"].(int); ok {
		venue.Capacity = capacity
	}
	if available, ok := updates["is_available"].(bool); ok {
		venue.IsAvailable = available
	}
	copied := *venue
	return &copied, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.venues[id]; !ok {
		return ErrVenueNotFound
	}
	delete(f.venues, id)
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

func seedVenue(t *testing.T, svc Service, name, city string, capacity int) *Venue {
	t.Helper()
	venue, err := svc.CreateVenue(context.Background(), CreateVenueRequest{
		Name:     name,
		Address:  "1 Test Road",
		City:     city,
		Capacity: capacity,
	})
	require.NoError(t, err)
	return venue
}

func TestCreateVenueDefaultsCountry(t *testing.T) {
	svc, _ := newTestService(t)

	venue := seedVenue(t, svc, "Eko Convention Centre", "Lagos", 5000)
	assert.Equal(t, "Nigeria", venue.Country)
	assert.True(t, venue.IsAvailable)
}

func TestListVenuesFiltersByCity(t *testing.T) {
	svc, _ := newTestService(t)
	seedVenue(t, svc, "Eko Convention Centre", "Lagos", 5000)
	seedVenue(t, svc, "Transcorp Hilton", "Abuja", 1200)

	result, err := svc.ListVenues(context.Background(), VenueListQuery{City: "Lagos", Page: 1, Limit: 20})
	require.NoError(t, err)

	require.Len(t, result.Venues, 1)
	assert.Equal(t, "Eko Convention Centre", result.Venues[0].Name)
	assert.Equal(t, int64(1), result.Total)
}

func TestListVenuesFiltersByCapacity(t *testing.T) {
	svc, _ := newTestService(t)
	seedVenue(t, svc, "Eko Convention Centre", "Lagos", 5000)
	seedVenue(t, svc, "Sky Lounge", "Lagos", 150)

	result, err := svc.ListVenues(context.Background(), VenueListQuery{MinCapacity: 1000, Page: 1, Limit: 20})
	require.NoError(t, err)

	require.Len(t, result.Venues, 1)
	assert.Equal(t, "Eko Convention Centre", result.Venues[0].Name)
}

func TestListVenuesNormalizesPaging(t *testing.T) {
	svc, _ := newTestService(t)
	seedVenue(t, svc, "Eko Convention Centre", "Lagos", 5000)

	result, err := svc.ListVenues(context.Background(), VenueListQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, 1, result.TotalPages)
}

func TestUpdateUnknownVenue(t *testing.T) {
	svc, _ := newTestService(t)

	available := false
	_, err := svc.UpdateVenue(context.Background(), uuid.New(), UpdateVenueRequest{IsAvailable: &available})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestDeleteVenueRemovesIt(t *testing.T) {
	svc, repo := newTestService(t)
	venue := seedVenue(t, svc, "Eko Convention Centre", "Lagos", 5000)

	require.NoError(t, svc.DeleteVenue(context.Background(), venue.ID))

	_, err := svc.GetVenue(context.Background(), venue.ID)
	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.Empty(t, repo.venues)
}
