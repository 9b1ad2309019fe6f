package venues

import (
	"context"

	"github.com/google/uuid"

	"eventbuka/internal/shared/constants"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

type Service interface {
	CreateVenue(ctx context.Context, req CreateVenueRequest) (*Venue, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error)
	ListVenues(ctx context.Context, query VenueListQuery) (*PaginatedVenues, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, req UpdateVenueRequest) (*Venue, error)
	DeleteVenue(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo         Repository
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, log *logger.Logger) Service {
	return &service{repo: repo, cacheService: cacheService, log: log}
}

func (s *service) CreateVenue(ctx context.Context, req CreateVenueRequest) (*Venue, error) {
	country := req.Country
	if country == "" {
		country = "Nigeria"
	}

	venue := &Venue{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		Amenities:    req.Amenities,
		Images:       req.Images,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		IsAvailable:  true,
	}
	if err := s.repo.Create(venue); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return venue, nil
}

func (s *service) GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListVenues(ctx context.Context, query VenueListQuery) (*PaginatedVenues, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 20
	}

	fetch := func() (interface{}, error) {
		venues, total, err := s.repo.List(ctx, query)
		if err != nil {
			return nil, err
		}
		if venues == nil {
			venues = []Venue{}
		}
		totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))
		return &PaginatedVenues{
			Venues:     venues,
			Total:      total,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: totalPages,
		}, nil
	}

	// Only the first unfiltered page and plain city lookups are hot
	// enough to cache.
	cacheable := query.MinCapacity == 0 && !query.AvailableOnly && query.Page == 1
	if !cacheable {
		result, err := fetch()
		if err != nil {
			return nil, err
		}
		return result.(*PaginatedVenues), nil
	}

	var result PaginatedVenues
	err := s.cacheService.GetOrSet(ctx,
		constants.BuildVenuesListKey(query.City),
		constants.TTL_VENUES_LIST,
		fetch,
		&result,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) UpdateVenue(ctx context.Context, id uuid.UUID, req UpdateVenueRequest) (*Venue, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.PricePerHour != nil {
		updates["price_per_hour"] = *req.PricePerHour
	}
	if req.PricePerDay != nil {
		updates["price_per_day"] = *req.PricePerDay
	}
	if req.Amenities != nil {
		updates["amenities"] = req.Amenities
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}

	if len(updates) == 0 {
		return s.repo.GetByID(ctx, id)
	}

	venue, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	return venue, nil
}

func (s *service) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *service) invalidateListings(ctx context.Context) {
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_VENUES_ALL); err != nil {
		s.log.DebugWithContext(ctx, "venue cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
