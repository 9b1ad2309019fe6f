package bookings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type Repository interface {
	Create(tx *gorm.DB, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByReference(ctx context.Context, reference string) (*Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]Booking, int64, error)
	UpdateStatus(tx *gorm.DB, id uuid.UUID, from, to Status) error
	SetCancelledAt(tx *gorm.DB, id uuid.UUID, at time.Time) error
	DeleteSeats(tx *gorm.DB, bookingID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(tx *gorm.DB, booking *Booking) error {
	return tx.Create(booking).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Preload("Seats").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Preload("Seats").Where("reference = ?", reference).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]Booking, int64, error) {
	db := r.db.WithContext(ctx).Model(&Booking{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []Booking
	err := db.Preload("Seats").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// UpdateStatus moves a booking between states with a compare-and-swap
// so double cancellations lose cleanly.
func (r *repository) UpdateStatus(tx *gorm.DB, id uuid.UUID, from, to Status) error {
	result := tx.Model(&Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repository) SetCancelledAt(tx *gorm.DB, id uuid.UUID, at time.Time) error {
	return tx.Model(&Booking{}).Where("id = ?", id).Update("cancelled_at", at).Error
}

// DeleteSeats removes a booking's seat rows. Cancellation must call
// this so the unique (event_id, seat_label) index does not keep
// blocking the seat after it is released.
func (r *repository) DeleteSeats(tx *gorm.DB, bookingID uuid.UUID) error {
	return tx.Where("booking_id = ?", bookingID).Delete(&BookingSeat{}).Error
}
