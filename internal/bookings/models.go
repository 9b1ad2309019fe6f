package bookings

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusRefunded  Status = "REFUNDED"
)

type Kind string

const (
	KindTicket Kind = "TICKET"
	KindSeat   Kind = "SEAT"
)

// Booking is a confirmed purchase of tickets or seats for one event.
// TotalAmount is whole naira.
type Booking struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Reference   string    `json:"reference" gorm:"not null;size:40;uniqueIndex"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	EventID     uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	Kind        Kind      `json:"kind" gorm:"type:varchar(10);not null"`
	Status      Status    `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
	TotalAmount int64     `json:"total_amount" gorm:"not null;check:total_amount >= 0"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity > 0"`

	// Non-empty when the purchase was settled outside the wallet; the
	// gateway reference is stored verbatim and no wallet movement
	// happens for this booking.
	PaymentRef string `json:"payment_ref,omitempty" gorm:"size:100"`

	// Ticket bookings: which tier and how many.
	TicketTypeID *uuid.UUID `json:"ticket_type_id,omitempty" gorm:"type:uuid"`

	// Seat bookings: the reserved seat labels.
	Seats []BookingSeat `json:"seats,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingSeat pins one seat label to a booking. The unique index on
// (event_id, seat_label) is the database-level double-booking guard.
type BookingSeat struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BookingID uuid.UUID `json:"booking_id" gorm:"type:uuid;not null;index"`
	EventID   uuid.UUID `json:"event_id" gorm:"type:uuid;not null"`
	SeatLabel string    `json:"seat_label" gorm:"not null;size:20"`
	Price     int64     `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (BookingSeat) TableName() string {
	return "booking_seats"
}

type TicketBookingRequest struct {
	EventID      uuid.UUID `json:"event_id" binding:"required"`
	TicketTypeID uuid.UUID `json:"ticket_type_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required,min=1,max=10"`
	PaymentRef   string    `json:"payment_ref" binding:"omitempty,max=100"`
}

type SeatBookingRequest struct {
	EventID    uuid.UUID `json:"event_id" binding:"required"`
	SeatLabels []string  `json:"seat_labels" binding:"required,min=1,max=20"`
	PaymentRef string    `json:"payment_ref" binding:"omitempty,max=100"`
}

type BookingResponse struct {
	ID           string     `json:"id"`
	Reference    string     `json:"reference"`
	UserID       string     `json:"user_id"`
	EventID      string     `json:"event_id"`
	Kind         Kind       `json:"kind"`
	Status       Status     `json:"status"`
	TotalAmount  int64      `json:"total_amount"`
	Quantity     int        `json:"quantity"`
	TicketTypeID *uuid.UUID `json:"ticket_type_id,omitempty"`
	SeatLabels   []string   `json:"seat_labels,omitempty"`
	PaymentRef   string     `json:"payment_ref,omitempty"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (b *Booking) ToResponse() BookingResponse {
	var labels []string
	for _, seat := range b.Seats {
		labels = append(labels, seat.SeatLabel)
	}

	return BookingResponse{
		ID:           b.ID.String(),
		Reference:    b.Reference,
		UserID:       b.UserID.String(),
		EventID:      b.EventID.String(),
		Kind:         b.Kind,
		Status:       b.Status,
		TotalAmount:  b.TotalAmount,
		Quantity:     b.Quantity,
		TicketTypeID: b.TicketTypeID,
		SeatLabels:   labels,
		PaymentRef:   b.PaymentRef,
		ConfirmedAt:  b.ConfirmedAt,
		CancelledAt:  b.CancelledAt,
		CreatedAt:    b.CreatedAt,
	}
}

type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
