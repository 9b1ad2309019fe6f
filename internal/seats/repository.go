package seats

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSeatsUnavailable = errors.New("one or more seats are already booked")
	ErrNoSeats          = errors.New("event has no seats")
)

type Repository interface {
	CreateBatch(ctx context.Context, seats []Seat) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]Seat, error)
	ListByLabels(ctx context.Context, eventID uuid.UUID, labels []string) ([]Seat, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) error

	// MarkBooked flips the given seats to booked inside tx. It fails
	// with ErrSeatsUnavailable unless every requested seat was free.
	MarkBooked(tx *gorm.DB, eventID uuid.UUID, labels []string) error

	// Release frees previously booked seats inside tx.
	Release(tx *gorm.DB, eventID uuid.UUID, labels []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBatch(ctx context.Context, seats []Seat) error {
	if len(seats) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(seats, 200).Error
}

func (r *repository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("section ASC, row ASC, position ASC").
		Find(&seats).Error
	if err != nil {
		return nil, err
	}
	if len(seats) == 0 {
		return nil, ErrNoSeats
	}
	return seats, nil
}

func (r *repository) ListByLabels(ctx context.Context, eventID uuid.UUID, labels []string) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND label IN ?", eventID, labels).
		Find(&seats).Error
	return seats, err
}

func (r *repository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Seat{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (r *repository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Seat{}, "event_id = ?", eventID).Error
}

func (r *repository) MarkBooked(tx *gorm.DB, eventID uuid.UUID, labels []string) error {
	result := tx.Model(&Seat{}).
		Where("event_id = ? AND label IN ? AND is_booked = ?", eventID, labels, false).
		Update("is_booked", true)
	if result.Error != nil {
		return result.Error
	}

	// All-or-nothing: a partial update means somebody got one of the
	// requested seats first, so the enclosing transaction must roll back.
	if result.RowsAffected != int64(len(labels)) {
		return ErrSeatsUnavailable
	}
	return nil
}

func (r *repository) Release(tx *gorm.DB, eventID uuid.UUID, labels []string) error {
	return tx.Model(&Seat{}).
		Where("event_id = ? AND label IN ? AND is_booked = ?", eventID, labels, true).
		Update("is_booked", false).Error
}
