package events

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"eventbuka/internal/shared/constants"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

var (
	ErrNotEventOwner     = errors.New("event does not belong to this organizer")
	ErrEventNotEditable  = errors.New("event can no longer be edited")
	ErrCategoryNotFound  = errors.New("event category not found")
	ErrEventNotPublished = errors.New("event is not published")
)

type Service interface {
	CreateEvent(ctx context.Context, organizerID uuid.UUID, req CreateEventRequest) (*EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	ListEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error)
	ListUpcoming(ctx context.Context, limit int) ([]EventResponse, error)
	ListOrganizerEvents(ctx context.Context, organizerID uuid.UUID, page, limit int) (*PaginatedEvents, error)
	UpdateEvent(ctx context.Context, id, actorID uuid.UUID, isAdmin bool, req UpdateEventRequest) (*EventResponse, error)
	PublishEvent(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error
	CancelEvent(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error
	DeleteEvent(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error

	ListCategories(ctx context.Context) ([]EventCategory, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*EventCategory, error)
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

func (s *service) CreateEvent(ctx context.Context, organizerID uuid.UUID, req CreateEventRequest) (*EventResponse, error) {
	country := req.Country
	if country == "" {
		country = "Nigeria"
	}

	event := &Event{
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		OrganizerID:  organizerID,
		VenueID:      req.VenueID,
		VenueName:    req.VenueName,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       StatusDraft,
		IsFree:       req.IsFree,
		IsAwardEvent: req.IsAwardEvent,
		HasSeating:   req.HasSeating,
		DressCode:    req.DressCode,
		ImageURL:     req.ImageURL,
		Tags:         req.Tags,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.LogEventCreated(ctx, event.ID.String(), organizerID.String())

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	var resp EventResponse
	err := s.cache.GetOrSet(ctx, constants.BuildEventDetailKey(id.String()), constants.TTL_EVENT_DETAIL,
		func() (interface{}, error) {
			event, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return event.ToResponse(), nil
		}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) ListEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error) {
	normalizeQuery(&query)

	// Only the unfiltered browse pages are worth caching. Searches
	// and filter combinations go straight to the database.
	cacheable := query.Search == "" && query.City == "" && query.CategoryID == "" &&
		query.DateFrom == "" && query.DateTo == "" && !query.AwardsOnly && !query.FreeOnly

	if cacheable {
		var result PaginatedEvents
		key := constants.BuildEventListKey(query.Page, query.Limit, query.Status)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_EVENT_LIST,
			func() (interface{}, error) {
				return s.listFromDB(ctx, query)
			}, &result)
		if err != nil {
			return nil, err
		}
		return &result, nil
	}

	return s.listFromDB(ctx, query)
}

func (s *service) listFromDB(ctx context.Context, query EventListQuery) (*PaginatedEvents, error) {
	events, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return paginate(events, total, query.Page, query.Limit), nil
}

func (s *service) ListUpcoming(ctx context.Context, limit int) ([]EventResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	var responses []EventResponse
	key := constants.CACHE_KEY_EVENTS_UPCOMING
	err := s.cache.GetOrSet(ctx, key, constants.TTL_EVENT_UPCOMING,
		func() (interface{}, error) {
			events, err := s.repo.ListUpcoming(ctx, limit)
			if err != nil {
				return nil, err
			}
			return toResponses(events), nil
		}, &responses)
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (s *service) ListOrganizerEvents(ctx context.Context, organizerID uuid.UUID, page, limit int) (*PaginatedEvents, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	events, total, err := s.repo.ListByOrganizer(ctx, organizerID, page, limit)
	if err != nil {
		return nil, err
	}
	return paginate(events, total, page, limit), nil
}

func (s *service) UpdateEvent(ctx context.Context, id, actorID uuid.UUID, isAdmin bool, req UpdateEventRequest) (*EventResponse, error) {
	event, err := s.authorizedEvent(ctx, id, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	if event.Status == StatusCompleted || event.Status == StatusCancelled {
		return nil, ErrEventNotEditable
	}

	applyUpdates(event, req)

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) PublishEvent(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error {
	event, err := s.authorizedEvent(ctx, id, actorID, isAdmin)
	if err != nil {
		return err
	}

	if event.Status != StatusDraft {
		return ErrEventNotEditable
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusPublished); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *service) CancelEvent(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error {
	event, err := s.authorizedEvent(ctx, id, actorID, isAdmin)
	if err != nil {
		return err
	}

	if event.Status == StatusCompleted || event.Status == StatusCancelled {
		return ErrEventNotEditable
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *service) DeleteEvent(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) error {
	event, err := s.authorizedEvent(ctx, id, actorID, isAdmin)
	if err != nil {
		return err
	}

	// Published events are cancelled, not deleted, so booking history
	// keeps a row to point at.
	if event.Status == StatusPublished {
		return ErrEventNotEditable
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *service) ListCategories(ctx context.Context) ([]EventCategory, error) {
	var categories []EventCategory
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_EVENT_CATEGORIES, constants.TTL_EVENT_CATEGORIES,
		func() (interface{}, error) {
			return s.repo.ListCategories(ctx)
		}, &categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*EventCategory, error) {
	category := &EventCategory{
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, constants.CACHE_KEY_EVENT_CATEGORIES); err != nil {
		s.log.DebugWithContext(ctx, "category cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}

	return category, nil
}

func (s *service) authorizedEvent(ctx context.Context, id, actorID uuid.UUID, isAdmin bool) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && event.OrganizerID != actorID {
		return nil, ErrNotEventOwner
	}
	return event, nil
}

func (s *service) invalidate(ctx context.Context, eventID uuid.UUID) {
	patterns := []string{
		constants.PATTERN_INVALIDATE_EVENTS_ALL,
		constants.BuildEventDetailKey(eventID.String()),
	}
	for _, pattern := range patterns {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			s.log.DebugWithContext(ctx, "event cache invalidation failed", map[string]interface{}{
				"pattern": pattern,
				"error":   err.Error(),
			})
		}
	}
}

func applyUpdates(event *Event, req UpdateEventRequest) {
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.CategoryID != nil {
		event.CategoryID = req.CategoryID
	}
	if req.VenueID != nil {
		event.VenueID = req.VenueID
	}
	if req.VenueName != nil {
		event.VenueName = *req.VenueName
	}
	if req.Address != nil {
		event.Address = *req.Address
	}
	if req.City != nil {
		event.City = *req.City
	}
	if req.State != nil {
		event.State = *req.State
	}
	if req.Latitude != nil {
		event.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		event.Longitude = *req.Longitude
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.IsFree != nil {
		event.IsFree = *req.IsFree
	}
	if req.HasSeating != nil {
		event.HasSeating = *req.HasSeating
	}
	if req.Tags != nil {
		event.Tags = req.Tags
	}
	if req.DressCode != nil {
		event.DressCode = *req.DressCode
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	event.UpdatedAt = time.Now()
}

func normalizeQuery(query *EventListQuery) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 100 {
		query.Limit = 20
	}
}

func toResponses(events []Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = events[i].ToResponse()
	}
	return responses
}

func paginate(events []Event, total int64, page, limit int) *PaginatedEvents {
	return &PaginatedEvents{
		Events:     toResponses(events),
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}
