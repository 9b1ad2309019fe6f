package venues

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

type Repository interface {
	Create(venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	List(ctx context.Context, query VenueListQuery) ([]Venue, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Venue, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(venue *Venue) error {
	return r.db.Create(venue).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *repository) List(ctx context.Context, query VenueListQuery) ([]Venue, int64, error) {
	db := r.db.WithContext(ctx).Model(&Venue{})

	if query.City != "" {
		db = db.Where("city ILIKE ?", "%"+query.City+"%")
	}
	if query.MinCapacity > 0 {
		db = db.Where("capacity >= ?", query.MinCapacity)
	}
	if query.AvailableOnly {
		db = db.Where("is_available = ?", true)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var venues []Venue
	err := db.Order("name ASC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&venues).Error
	if err != nil {
		return nil, 0, err
	}

	return venues, total, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Venue, error) {
	result := r.db.WithContext(ctx).Model(&Venue{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrVenueNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Venue{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}
