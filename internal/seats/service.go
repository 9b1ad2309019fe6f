package seats

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventbuka/internal/seating"
	"eventbuka/internal/shared/constants"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

var (
	ErrSeatsAlreadyExist = errors.New("event already has a seat map")
	ErrUnknownSeat       = errors.New("unknown seat label")
	ErrDuplicateSeat     = errors.New("seat label repeated in selection")
)

var sectionNames = map[seating.SectionKey]string{
	seating.SectionVIP:     "VIP Section",
	seating.SectionRegular: "Regular Section",
	seating.SectionTable:   "Table Section",
}

var sectionPrefixes = map[seating.SectionKey]string{
	seating.SectionVIP:     "VIP",
	seating.SectionRegular: "REG",
	seating.SectionTable:   "TBL",
}

type Service interface {
	Generate(ctx context.Context, eventID uuid.UUID, req GenerateSeatsRequest) (*SeatMapResponse, error)
	SeatMap(ctx context.Context, eventID uuid.UUID) (*SeatMapResponse, error)
	Quote(ctx context.Context, eventID uuid.UUID, labels []string) (*QuoteResponse, error)

	// Booking integration: both run inside the caller's transaction so
	// seat state and booking rows commit or roll back together.
	MarkBooked(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, labels []string) error
	Release(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, labels []string) error
}

type service struct {
	repo  Repository
	cache cache.Service
	log   *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, log *logger.Logger) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		log:   log,
	}
}

func (s *service) Generate(ctx context.Context, eventID uuid.UUID, req GenerateSeatsRequest) (*SeatMapResponse, error) {
	count, err := s.repo.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSeatsAlreadyExist
	}

	var sections []seating.Section
	if len(req.Sections) == 0 {
		sections = seating.DefaultLayout(seating.NewBookedSet())
	} else {
		for _, layout := range req.Sections {
			prefix := sectionPrefixes[layout.Section]
			var generated []seating.Seat
			if layout.Section == seating.SectionTable {
				generated = seating.GenerateTableSeats(prefix, layout.Rows, layout.PerRow, layout.UnitPrice, seating.NewBookedSet())
			} else {
				generated = seating.GenerateRowSeats(prefix, layout.Rows, layout.PerRow, layout.UnitPrice, seating.NewBookedSet())
			}
			sections = append(sections, seating.Section{
				Key:       layout.Section,
				Name:      sectionNames[layout.Section],
				Prefix:    prefix,
				UnitPrice: layout.UnitPrice,
				Seats:     generated,
			})
		}
	}

	var rows []Seat
	for _, section := range sections {
		for _, seat := range section.Seats {
			rows = append(rows, Seat{
				EventID:  eventID,
				Section:  section.Key,
				Label:    seat.ID,
				Row:      seat.Row,
				Position: seat.Position,
				Price:    seat.Price,
			})
		}
	}

	if err := s.repo.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}

	return s.SeatMap(ctx, eventID)
}

func (s *service) SeatMap(ctx context.Context, eventID uuid.UUID) (*SeatMapResponse, error) {
	var resp SeatMapResponse
	err := s.cache.GetOrSet(ctx, constants.BuildSeatmapKey(eventID.String()), constants.TTL_SEATMAP,
		func() (interface{}, error) {
			return s.seatMapFromDB(ctx, eventID)
		}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) seatMapFromDB(ctx context.Context, eventID uuid.UUID) (*SeatMapResponse, error) {
	rows, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	bySection := make(map[seating.SectionKey][]SeatInfo)
	unitPrices := make(map[seating.SectionKey]int64)
	booked := 0
	for _, row := range rows {
		bySection[row.Section] = append(bySection[row.Section], SeatInfo{
			Label:    row.Label,
			Row:      row.Row,
			Position: row.Position,
			Price:    row.Price,
			IsBooked: row.IsBooked,
		})
		unitPrices[row.Section] = row.Price
		if row.IsBooked {
			booked++
		}
	}

	sections := make([]SectionView, 0, len(bySection))
	for _, key := range sectionOrder(bySection) {
		sections = append(sections, SectionView{
			Key:       key,
			Name:      sectionNames[key],
			Prefix:    sectionPrefixes[key],
			UnitPrice: unitPrices[key],
			Seats:     bySection[key],
		})
	}

	return &SeatMapResponse{
		EventID:   eventID.String(),
		Sections:  sections,
		TotalSeat: len(rows),
		Booked:    booked,
		Available: len(rows) - booked,
	}, nil
}

// Quote prices a seat selection by replaying it through the section
// plan, so booked and unknown labels are rejected the same way the
// interactive picker rejects them.
func (s *service) Quote(ctx context.Context, eventID uuid.UUID, labels []string) (*QuoteResponse, error) {
	rows, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	plan := planFromRows(rows)

	known := make(map[string]seating.SectionKey, len(rows))
	prices := make(map[string]int64, len(rows))
	for _, row := range rows {
		known[row.Label] = row.Section
		prices[row.Label] = row.Price
	}

	// A repeated label would replay as a deselect toggle, so reject
	// duplicates up front instead of quoting an empty selection.
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if seen[label] {
			return nil, ErrDuplicateSeat
		}
		seen[label] = true

		section, ok := known[label]
		if !ok {
			return nil, ErrUnknownSeat
		}
		plan.SetCurrentSection(section)
		if !plan.Toggle(label) {
			return nil, ErrSeatsUnavailable
		}
	}

	total := plan.Total()
	confirmed := plan.Confirm()

	quoted := make(map[string]int64, len(confirmed))
	for _, label := range confirmed {
		quoted[label] = prices[label]
	}

	return &QuoteResponse{
		EventID:    eventID.String(),
		SeatLabels: confirmed,
		SeatPrices: quoted,
		Total:      total,
	}, nil
}

func (s *service) MarkBooked(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, labels []string) error {
	if err := s.repo.MarkBooked(tx, eventID, labels); err != nil {
		return err
	}
	s.invalidate(ctx, eventID)
	return nil
}

func (s *service) Release(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, labels []string) error {
	if err := s.repo.Release(tx, eventID, labels); err != nil {
		return err
	}
	s.invalidate(ctx, eventID)
	return nil
}

func planFromRows(rows []Seat) *seating.Plan {
	bySection := make(map[seating.SectionKey][]seating.Seat)
	unitPrices := make(map[seating.SectionKey]int64)
	for _, row := range rows {
		bySection[row.Section] = append(bySection[row.Section], seating.Seat{
			ID:       row.Label,
			Row:      row.Row,
			Position: row.Position,
			Price:    row.Price,
			Booked:   row.IsBooked,
		})
		unitPrices[row.Section] = row.Price
	}

	sections := make([]seating.Section, 0, len(bySection))
	for _, key := range sectionOrder(bySection) {
		sections = append(sections, seating.Section{
			Key:       key,
			Name:      sectionNames[key],
			Prefix:    sectionPrefixes[key],
			UnitPrice: unitPrices[key],
			Seats:     bySection[key],
		})
	}

	return seating.NewPlan(sections)
}

func (s *service) invalidate(ctx context.Context, eventID uuid.UUID) {
	key := constants.BuildSeatmapKey(eventID.String())
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.DebugWithContext(ctx, "seatmap cache invalidation failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// sectionOrder keeps the stock vip/regular/table ordering and appends
// any custom sections alphabetically after it.
func sectionOrder[T any](bySection map[seating.SectionKey]T) []seating.SectionKey {
	stock := []seating.SectionKey{seating.SectionVIP, seating.SectionRegular, seating.SectionTable}

	var keys []seating.SectionKey
	seen := make(map[seating.SectionKey]bool)
	for _, key := range stock {
		if _, ok := bySection[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}

	var extra []seating.SectionKey
	for key := range bySection {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(keys, extra...)
}
