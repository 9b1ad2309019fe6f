package venues

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a directory entry that organizers can attach events to.
// Pricing is whole naira.
type Venue struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name         string    `json:"name" gorm:"not null;size:255;index"`
	Description  string    `json:"description" gorm:"type:text"`
	Address      string    `json:"address" gorm:"not null;size:500"`
	City         string    `json:"city" gorm:"not null;size:100;index"`
	State        string    `json:"state" gorm:"size:100"`
	Country      string    `json:"country" gorm:"size:100;default:'Nigeria'"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Capacity     int       `json:"capacity" gorm:"not null;check:capacity > 0"`
	PricePerHour int64     `json:"price_per_hour" gorm:"not null;default:0"`
	PricePerDay  int64     `json:"price_per_day" gorm:"not null;default:0"`
	Amenities    []string  `json:"amenities" gorm:"serializer:json"`
	Images       []string  `json:"images" gorm:"serializer:json"`
	ContactEmail string    `json:"contact_email" gorm:"size:255"`
	ContactPhone string    `json:"contact_phone" gorm:"size:50"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Venue) TableName() string {
	return "venues"
}

type CreateVenueRequest struct {
	Name         string   `json:"name" binding:"required,min=2,max=255"`
	Description  string   `json:"description" binding:"omitempty,max=5000"`
	Address      string   `json:"address" binding:"required,max=500"`
	City         string   `json:"city" binding:"required,max=100"`
	State        string   `json:"state" binding:"omitempty,max=100"`
	Country      string   `json:"country" binding:"omitempty,max=100"`
	Latitude     float64  `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    float64  `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Capacity     int      `json:"capacity" binding:"required,min=1"`
	PricePerHour int64    `json:"price_per_hour" binding:"omitempty,min=0"`
	PricePerDay  int64    `json:"price_per_day" binding:"omitempty,min=0"`
	Amenities    []string `json:"amenities" binding:"omitempty,max=50"`
	Images       []string `json:"images" binding:"omitempty,max=20"`
	ContactEmail string   `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string   `json:"contact_phone" binding:"omitempty,max=50"`
}

type UpdateVenueRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description  *string  `json:"description" binding:"omitempty,max=5000"`
	Address      *string  `json:"address" binding:"omitempty,max=500"`
	City         *string  `json:"city" binding:"omitempty,max=100"`
	Capacity     *int     `json:"capacity" binding:"omitempty,min=1"`
	PricePerHour *int64   `json:"price_per_hour" binding:"omitempty,min=0"`
	PricePerDay  *int64   `json:"price_per_day" binding:"omitempty,min=0"`
	Amenities    []string `json:"amenities" binding:"omitempty,max=50"`
	Images       []string `json:"images" binding:"omitempty,max=20"`
	ContactEmail *string  `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string  `json:"contact_phone" binding:"omitempty,max=50"`
	IsAvailable  *bool    `json:"is_available"`
}

type VenueListQuery struct {
	City          string `form:"city"`
	MinCapacity   int    `form:"min_capacity" binding:"omitempty,min=1"`
	AvailableOnly bool   `form:"available_only"`
	Page          int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit         int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

type PaginatedVenues struct {
	Venues     []Venue `json:"venues"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}
