package analytics

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"eventbuka/internal/events"
	"eventbuka/internal/shared/constants"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

var ErrNotEventOwner = errors.New("only the event organizer can view these stats")

// EventReader is the slice of the events service the stats flow needs.
type EventReader interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*events.EventResponse, error)
}

type Service interface {
	GetEventStats(ctx context.Context, actorID uuid.UUID, isAdmin bool, eventID uuid.UUID) (*EventStats, error)
	GetPlatformOverview(ctx context.Context) (*PlatformOverview, error)
	GetDailyBookingStats(ctx context.Context, days int) ([]DailyBookingStat, error)
}

type service struct {
	repo         Repository
	eventSvc     EventReader
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository, eventSvc EventReader, cacheService cache.Service, log *logger.Logger) Service {
	return &service{
		repo:         repo,
		eventSvc:     eventSvc,
		cacheService: cacheService,
		log:          log,
	}
}

func (s *service) GetEventStats(ctx context.Context, actorID uuid.UUID, isAdmin bool, eventID uuid.UUID) (*EventStats, error) {
	event, err := s.eventSvc.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && event.OrganizerID != actorID.String() {
		return nil, ErrNotEventOwner
	}

	var stats EventStats
	err = s.cacheService.GetOrSet(ctx, constants.BuildEventStatsKey(eventID.String()), constants.TTL_EVENT_STATS,
		func() (interface{}, error) {
			fresh, err := s.repo.GetEventStats(ctx, eventID)
			if err != nil {
				return nil, err
			}
			fresh.Title = event.Title
			return fresh, nil
		}, &stats)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s *service) GetPlatformOverview(ctx context.Context) (*PlatformOverview, error) {
	var overview PlatformOverview
	err := s.cacheService.GetOrSet(ctx, constants.CACHE_KEY_PLATFORM_OVERVIEW, constants.TTL_PLATFORM_OVERVIEW,
		func() (interface{}, error) {
			return s.repo.GetPlatformOverview(ctx)
		}, &overview)
	if err != nil {
		return nil, err
	}
	return &overview, nil
}

func (s *service) GetDailyBookingStats(ctx context.Context, days int) ([]DailyBookingStat, error) {
	if days < 1 {
		days = 30
	}
	if days > 90 {
		days = 90
	}
	return s.repo.GetDailyBookingStats(ctx, days)
}
