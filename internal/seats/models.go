package seats

import (
	"time"

	"github.com/google/uuid"

	"eventbuka/internal/seating"
)

// Seat is one persisted seat of an event's floor plan. Label is the
// seat's stable identifier within the event, e.g. "VIP-A-3" or
// "TBL-1-A".
type Seat struct {
	ID       uuid.UUID          `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID  uuid.UUID          `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_seats_event_label"`
	Section  seating.SectionKey `json:"section" gorm:"type:varchar(20);not null"`
	Label    string             `json:"label" gorm:"not null;size:20;uniqueIndex:idx_seats_event_label"`
	Row      string             `json:"row" gorm:"size:10"`
	Position string             `json:"position" gorm:"size:10"`
	Price    int64              `json:"price" gorm:"not null;check:price >= 0"`
	IsBooked bool               `json:"is_booked" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Seat) TableName() string {
	return "seats"
}

// SectionLayout describes one section to generate for an event.
type SectionLayout struct {
	Section   seating.SectionKey `json:"section" binding:"required,oneof=vip regular table"`
	Rows      int                `json:"rows" binding:"required,min=1,max=50"`
	PerRow    int                `json:"per_row" binding:"required,min=1,max=50"`
	UnitPrice int64              `json:"unit_price" binding:"required,min=0"`
}

// GenerateSeatsRequest creates an event's floor plan. When Sections is
// empty the default VIP/regular/table layout is used.
type GenerateSeatsRequest struct {
	Sections []SectionLayout `json:"sections" binding:"omitempty,dive"`
}

// SectionView is one section of the seat map as served to clients.
type SectionView struct {
	Key       seating.SectionKey `json:"key"`
	Name      string             `json:"name"`
	Prefix    string             `json:"prefix"`
	UnitPrice int64              `json:"unit_price"`
	Seats     []SeatInfo         `json:"seats"`
}

// SeatInfo is the per-seat payload inside a seat map.
type SeatInfo struct {
	Label    string `json:"label"`
	Row      string `json:"row"`
	Position string `json:"position"`
	Price    int64  `json:"price"`
	IsBooked bool   `json:"is_booked"`
}

// SeatMapResponse is the full seat map of one event.
type SeatMapResponse struct {
	EventID   string        `json:"event_id"`
	Sections  []SectionView `json:"sections"`
	TotalSeat int           `json:"total_seats"`
	Booked    int           `json:"booked_seats"`
	Available int           `json:"available_seats"`
}

// QuoteRequest prices a set of seat labels before booking.
type QuoteRequest struct {
	SeatLabels []string `json:"seat_labels" binding:"required,min=1,max=20"`
}

// QuoteResponse is the priced selection.
type QuoteResponse struct {
	EventID    string           `json:"event_id"`
	SeatLabels []string         `json:"seat_labels"`
	SeatPrices map[string]int64 `json:"seat_prices"`
	Total      int64            `json:"total"`
}
