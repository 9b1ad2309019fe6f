package tickets

import (
	"time"

	"github.com/google/uuid"
)

// TicketType defines a purchasable ticket tier for an event. Prices are
// whole naira (int64); inventory is tracked as total vs sold so remaining
// availability is always derivable.
type TicketType struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID       uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         int64     `gorm:"not null;check:price >= 0" json:"price"`
	QuantityTotal int       `gorm:"not null;check:quantity_total >= 0" json:"quantity_total"`
	QuantitySold  int       `gorm:"not null;default:0;check:quantity_sold >= 0" json:"quantity_sold"`
	IsVIP         bool      `gorm:"default:false" json:"is_vip"`
	Benefits      []string  `gorm:"serializer:json" json:"benefits"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (TicketType) TableName() string {
	return "ticket_types"
}

// Remaining returns the unsold inventory, never negative.
func (t *TicketType) Remaining() int {
	remaining := t.QuantityTotal - t.QuantitySold
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (t *TicketType) ToResponse() TicketTypeResponse {
	return TicketTypeResponse{
		ID:            t.ID.String(),
		EventID:       t.EventID.String(),
		Name:          t.Name,
		Description:   t.Description,
		Price:         t.Price,
		QuantityTotal: t.QuantityTotal,
		QuantitySold:  t.QuantitySold,
		Remaining:     t.Remaining(),
		IsVIP:         t.IsVIP,
		Benefits:      t.Benefits,
		CreatedAt:     t.CreatedAt,
	}
}

type TicketTypeResponse struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int64     `json:"price"`
	QuantityTotal int       `json:"quantity_total"`
	QuantitySold  int       `json:"quantity_sold"`
	Remaining     int       `json:"remaining"`
	IsVIP         bool      `json:"is_vip"`
	Benefits      []string  `json:"benefits"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateTicketTypeRequest struct {
	Name          string   `json:"name" binding:"required,min=2,max=255"`
	Description   string   `json:"description" binding:"max=2000"`
	Price         int64    `json:"price" binding:"min=0"`
	QuantityTotal int      `json:"quantity_total" binding:"required,min=1,max=1000000"`
	IsVIP         bool     `json:"is_vip"`
	Benefits      []string `json:"benefits"`
}

type UpdateTicketTypeRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description   *string  `json:"description" binding:"omitempty,max=2000"`
	Price         *int64   `json:"price" binding:"omitempty,min=0"`
	QuantityTotal *int     `json:"quantity_total" binding:"omitempty,min=1,max=1000000"`
	IsVIP         *bool    `json:"is_vip"`
	Benefits      []string `json:"benefits"`
}
