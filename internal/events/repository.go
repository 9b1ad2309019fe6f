package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Repository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context, query EventListQuery) ([]Event, int64, error)
	ListUpcoming(ctx context.Context, limit int) ([]Event, error)
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID, page, limit int) ([]Event, int64, error)
	Update(ctx context.Context, event *Event) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]EventCategory, error)
	CreateCategory(ctx context.Context, category *EventCategory) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *repository) List(ctx context.Context, query EventListQuery) ([]Event, int64, error) {
	db := r.db.WithContext(ctx).Model(&Event{})

	// Public listings only ever see published events. The status
	// filter is honored for organizer and admin views further up.
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	} else {
		db = db.Where("status = ?", StatusPublished)
	}

	if query.Search != "" {
		term := "%" + query.Search + "%"
		db = db.Where("title ILIKE ? OR description ILIKE ?", term, term)
	}
	if query.City != "" {
		db = db.Where("city ILIKE ?", query.City)
	}
	if query.CategoryID != "" {
		db = db.Where("category_id = ?", query.CategoryID)
	}
	if query.AwardsOnly {
		db = db.Where("is_award_event = ?", true)
	}
	if query.FreeOnly {
		db = db.Where("is_free = ?", true)
	}
	if query.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", query.DateFrom); err == nil {
			db = db.Where("start_time >= ?", from)
		}
	}
	if query.DateTo != "" {
		if to, err := time.Parse("2006-01-02", query.DateTo); err == nil {
			db = db.Where("start_time < ?", to.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit

	var events []Event
	err := db.Order("start_time ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *repository) ListUpcoming(ctx context.Context, limit int) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("status = ? AND start_time > ?", StatusPublished, time.Now()).
		Order("start_time ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *repository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID, page, limit int) ([]Event, int64, error) {
	db := r.db.WithContext(ctx).Model(&Event{}).Where("organizer_id = ?", organizerID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []Event
	err := db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *repository) Update(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).Model(&Event{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *repository) ListCategories(ctx context.Context) ([]EventCategory, error) {
	var categories []EventCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *repository) CreateCategory(ctx context.Context, category *EventCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}
