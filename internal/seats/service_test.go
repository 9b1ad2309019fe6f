package seats

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventbuka/internal/seating"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

type fakeRepo struct {
	seats  map[uuid.UUID][]Seat
	marked [][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{seats: make(map[uuid.UUID][]Seat)}
}

func (f *fakeRepo) CreateBatch(_ context.Context, rows []Seat) error {
	for _, row := range rows {
		f.seats[row.EventID] = append(f.seats[row.EventID], row)
	}
	return nil
}

func (f *fakeRepo) ListByEvent(_ context.Context, eventID uuid.UUID) ([]Seat, error) {
	rows := f.seats[eventID]
	if len(rows) == 0 {
		return nil, ErrNoSeats
	}
	return rows, nil
}

func (f *fakeRepo) ListByLabels(_ context.Context, eventID uuid.UUID, labels []string) ([]Seat, error) {
	want := make(map[string]bool, len(labels))
	for _, label := range labels {
		want[label] = true
	}
	var out []Seat
	for _, row := range f.seats[eventID] {
		if want[row.Label] {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountByEvent(_ context.Context, eventID uuid.UUID) (int64, error) {
	return int64(len(f.seats[eventID])), nil
}

func (f *fakeRepo) DeleteByEvent(_ context.Context, eventID uuid.UUID) error {
	delete(f.seats, eventID)
	return nil
}

func (f *fakeRepo) MarkBooked(_ *gorm.DB, eventID uuid.UUID, labels []string) error {
	rows := f.seats[eventID]
	idx := make(map[string]int, len(rows))
	for i, row := range rows {
		idx[row.Label] = i
	}
	for _, label := range labels {
		i, ok := idx[label]
		if !ok || rows[i].IsBooked {
			return ErrSeatsUnavailable
		}
	}
	for _, label := range labels {
		rows[idx[label]].IsBooked = true
	}
	f.marked = append(f.marked, labels)
	return nil
}

func (f *fakeRepo) Release(_ *gorm.DB, eventID uuid.UUID, labels []string) error {
	rows := f.seats[eventID]
	want := make(map[string]bool, len(labels))
	for _, label := range labels {
		want[label] = true
	}
	for i := range rows {
		if want[rows[i].Label] {
			rows[i].IsBooked = false
		}
	}
	return nil
}

// noopCache satisfies cache.Service without a Redis connection. Reads
// always miss so fetchers run against the fake repository.
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

func newTestService(repo Repository) Service {
	return NewService(repo, noopCache{}, logger.New())
}

func seedDefaultLayout(t *testing.T, repo *fakeRepo, eventID uuid.UUID, booked ...string) {
	t.Helper()
	bookedSet := seating.NewBookedSet(booked...)
	for _, section := range seating.DefaultLayout(bookedSet) {
		for _, seat := range section.Seats {
			repo.seats[eventID] = append(repo.seats[eventID], Seat{
				EventID:  eventID,
				Section:  section.Key,
				Label:    seat.ID,
				Row:      seat.Row,
				Position: seat.Position,
				Price:    seat.Price,
				IsBooked: seat.Booked,
			})
		}
	}
}

func TestGenerateDefaultLayout(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()

	seatMap, err := svc.Generate(context.Background(), eventID, GenerateSeatsRequest{})
	require.NoError(t, err)

	// 5x10 VIP + 10x20 regular + 4 tables of 8
	assert.Equal(t, 282, seatMap.TotalSeat)
	assert.Equal(t, 282, seatMap.Available)
	assert.Len(t, seatMap.Sections, 3)
	assert.Equal(t, seating.SectionVIP, seatMap.Sections[0].Key)
	assert.Equal(t, int64(25000), seatMap.Sections[0].UnitPrice)
	assert.Equal(t, "VIP-A-1", seatMap.Sections[0].Seats[0].Label)
}

func TestGenerateRejectsExistingSeatMap(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()

	_, err := svc.Generate(context.Background(), eventID, GenerateSeatsRequest{})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), eventID, GenerateSeatsRequest{})
	assert.ErrorIs(t, err, ErrSeatsAlreadyExist)
}

func TestGenerateCustomSections(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()

	seatMap, err := svc.Generate(context.Background(), eventID, GenerateSeatsRequest{
		Sections: []SectionLayout{
			{Section: seating.SectionVIP, Rows: 2, PerRow: 4, UnitPrice: 50000},
			{Section: seating.SectionTable, Rows: 3, PerRow: 6, UnitPrice: 30000},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2*4+3*6, seatMap.TotalSeat)
	assert.Equal(t, "VIP-B-4", seatMap.Sections[0].Seats[7].Label)
	// table ids are {prefix}-{table}-{positionLetter}
	assert.Equal(t, "TBL-1-A", seatMap.Sections[1].Seats[0].Label)
	assert.Equal(t, "TBL-3-F", seatMap.Sections[1].Seats[17].Label)
}

func TestSeatMapCountsBookedSeats(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()
	seedDefaultLayout(t, repo, eventID, "VIP-A-3", "VIP-A-4", "REG-C-7", "REG-C-8", "TBL-1-A")

	seatMap, err := svc.SeatMap(context.Background(), eventID)
	require.NoError(t, err)

	assert.Equal(t, 282, seatMap.TotalSeat)
	assert.Equal(t, 5, seatMap.Booked)
	assert.Equal(t, 277, seatMap.Available)
}

func TestSeatMapMissingEvent(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.SeatMap(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoSeats)
}

func TestQuoteMixedSections(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()
	seedDefaultLayout(t, repo, eventID)

	quote, err := svc.Quote(context.Background(), eventID, []string{"VIP-B-1", "REG-C-2"})
	require.NoError(t, err)

	assert.Equal(t, int64(40000), quote.Total)
	assert.ElementsMatch(t, []string{"VIP-B-1", "REG-C-2"}, quote.SeatLabels)
}

func TestQuoteRejectsBookedSeat(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()
	seedDefaultLayout(t, repo, eventID, "TBL-1-A")

	_, err := svc.Quote(context.Background(), eventID, []string{"TBL-1-A", "TBL-1-B"})
	assert.ErrorIs(t, err, ErrSeatsUnavailable)
}

func TestQuoteRejectsDuplicateLabel(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()
	seedDefaultLayout(t, repo, eventID)

	_, err := svc.Quote(context.Background(), eventID, []string{"VIP-A-1", "VIP-A-1"})
	assert.ErrorIs(t, err, ErrDuplicateSeat)
}

func TestQuoteRejectsUnknownLabel(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()
	seedDefaultLayout(t, repo, eventID)

	_, err := svc.Quote(context.Background(), eventID, []string{"VIP-Z-99"})
	assert.ErrorIs(t, err, ErrUnknownSeat)
}

func TestMarkBookedIsAllOrNothing(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()
	seedDefaultLayout(t, repo, eventID, "TBL-1-A")

	err := svc.MarkBooked(context.Background(), nil, eventID, []string{"TBL-1-A", "TBL-1-B"})
	assert.ErrorIs(t, err, ErrSeatsUnavailable)
	assert.Empty(t, repo.marked)

	err = svc.MarkBooked(context.Background(), nil, eventID, []string{"TBL-1-B", "TBL-3-C"})
	require.NoError(t, err)

	seatMap, err := svc.SeatMap(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, 3, seatMap.Booked)
}

func TestReleaseFreesSeats(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	eventID := uuid.New()
	seedDefaultLayout(t, repo, eventID, "VIP-A-3", "VIP-A-4")

	err := svc.Release(context.Background(), nil, eventID, []string{"VIP-A-3", "VIP-A-4"})
	require.NoError(t, err)

	quote, err := svc.Quote(context.Background(), eventID, []string{"VIP-A-3"})
	require.NoError(t, err)
	assert.Equal(t, int64(25000), quote.Total)
}
