package tickets

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInsufficientInventory = errors.New("not enough tickets remaining")

type Repository interface {
	Create(ticketType *TicketType) error
	GetByID(id uuid.UUID) (*TicketType, error)
	GetByEvent(eventID uuid.UUID) ([]TicketType, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*TicketType, error)
	Delete(id uuid.UUID) error
	Sell(tx *gorm.DB, id uuid.UUID, quantity int) error
	Restock(tx *gorm.DB, id uuid.UUID, quantity int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ticketType *TicketType) error {
	return r.db.Create(ticketType).Error
}

func (r *repository) GetByID(id uuid.UUID) (*TicketType, error) {
	var ticketType TicketType
	if err := r.db.Where("id = ?", id).First(&ticketType).Error; err != nil {
		return nil, err
	}
	return &ticketType, nil
}

func (r *repository) GetByEvent(eventID uuid.UUID) ([]TicketType, error) {
	var ticketTypes []TicketType
	err := r.db.Where("event_id = ?", eventID).Order("price ASC").Find(&ticketTypes).Error
	return ticketTypes, err
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*TicketType, error) {
	var ticketType TicketType
	if err := r.db.Where("id = ?", id).First(&ticketType).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&ticketType).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).First(&ticketType).Error; err != nil {
		return nil, err
	}
	return &ticketType, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&TicketType{}).Error
}

// Sell bumps quantity_sold inside a guarded UPDATE so concurrent checkouts
// cannot oversell. A zero-row result means the guard failed. It runs on
// tx so inventory moves with the rest of the purchase.
func (r *repository) Sell(tx *gorm.DB, id uuid.UUID, quantity int) error {
	result := tx.Model(&TicketType{}).
		Where("id = ? AND quantity_sold + ? <= quantity_total", id, quantity).
		UpdateColumn("quantity_sold", gorm.Expr("quantity_sold + ?", quantity))
	if result.Error != nil {
		return fmt.Errorf("failed to sell tickets: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientInventory
	}
	return nil
}

// Restock returns cancelled tickets to the pool, flooring at zero sold.
func (r *repository) Restock(tx *gorm.DB, id uuid.UUID, quantity int) error {
	result := tx.Model(&TicketType{}).
		Where("id = ? AND quantity_sold >= ?", id, quantity).
		UpdateColumn("quantity_sold", gorm.Expr("quantity_sold - ?", quantity))
	if result.Error != nil {
		return fmt.Errorf("failed to restock tickets: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("restock of %d exceeds sold count for ticket type %s", quantity, id)
	}
	return nil
}
