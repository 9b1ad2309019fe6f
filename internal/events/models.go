package events

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// EventCategory groups events for browsing (concerts, conferences,
// award shows and so on).
type EventCategory struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100;uniqueIndex"`
	Slug      string    `json:"slug" gorm:"not null;size:100;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (EventCategory) TableName() string {
	return "event_categories"
}

type Event struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string     `json:"title" gorm:"not null;size:255;index"`
	Description string     `json:"description" gorm:"type:text"`
	CategoryID  *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`
	OrganizerID uuid.UUID  `json:"organizer_id" gorm:"type:uuid;not null;index"`

	// Location. VenueID links to the venue directory when the event
	// uses a listed venue; VenueName covers ad-hoc locations.
	VenueID   *uuid.UUID `json:"venue_id" gorm:"type:uuid;index"`
	VenueName string     `json:"venue_name" gorm:"size:255"`
	Address   string     `json:"address" gorm:"size:500"`
	City      string     `json:"city" gorm:"size:100;index"`
	State     string     `json:"state" gorm:"size:100"`
	Country   string     `json:"country" gorm:"size:100;default:'Nigeria'"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`

	StartTime time.Time `json:"start_time" gorm:"not null;index"`
	EndTime   time.Time `json:"end_time" gorm:"not null"`

	Status       Status   `json:"status" gorm:"type:varchar(20);default:'DRAFT';index"`
	IsFree       bool     `json:"is_free" gorm:"default:false"`
	IsAwardEvent bool     `json:"is_award_event" gorm:"default:false"`
	HasSeating   bool     `json:"has_seating" gorm:"default:false"`
	DressCode    string   `json:"dress_code" gorm:"size:100"`
	ImageURL     string   `json:"image_url" gorm:"size:500"`
	Tags         []string `json:"tags" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Event) TableName() string {
	return "events"
}

type EventResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	OrganizerID  string     `json:"organizer_id"`
	VenueID      *uuid.UUID `json:"venue_id,omitempty"`
	VenueName    string     `json:"venue_name"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	Country      string     `json:"country"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Status       Status     `json:"status"`
	IsFree       bool       `json:"is_free"`
	IsAwardEvent bool       `json:"is_award_event"`
	HasSeating   bool       `json:"has_seating"`
	DressCode    string     `json:"dress_code,omitempty"`
	ImageURL     string     `json:"image_url"`
	Tags         []string   `json:"tags"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (e *Event) ToResponse() EventResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	return EventResponse{
		ID:           e.ID.String(),
		Title:        e.Title,
		Description:  e.Description,
		CategoryID:   e.CategoryID,
		OrganizerID:  e.OrganizerID.String(),
		VenueID:      e.VenueID,
		VenueName:    e.VenueName,
		Address:      e.Address,
		City:         e.City,
		State:        e.State,
		Country:      e.Country,
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Status:       e.Status,
		IsFree:       e.IsFree,
		IsAwardEvent: e.IsAwardEvent,
		HasSeating:   e.HasSeating,
		DressCode:    e.DressCode,
		ImageURL:     e.ImageURL,
		Tags:         tags,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type CreateEventRequest struct {
	Title        string     `json:"title" binding:"required,min=3,max=255"`
	Description  string     `json:"description" binding:"max=5000"`
	CategoryID   *uuid.UUID `json:"category_id"`
	VenueID      *uuid.UUID `json:"venue_id"`
	VenueName    string     `json:"venue_name" binding:"max=255"`
	Address      string     `json:"address" binding:"max=500"`
	City         string     `json:"city" binding:"required,max=100"`
	State        string     `json:"state" binding:"max=100"`
	Country      string     `json:"country" binding:"max=100"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	StartTime    time.Time  `json:"start_time" binding:"required"`
	EndTime      time.Time  `json:"end_time" binding:"required,gtfield=StartTime"`
	IsFree       bool       `json:"is_free"`
	IsAwardEvent bool       `json:"is_award_event"`
	HasSeating   bool       `json:"has_seating"`
	DressCode    string     `json:"dress_code" binding:"max=100"`
	ImageURL     string     `json:"image_url" binding:"omitempty,url"`
	Tags         []string   `json:"tags" binding:"max=10"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=3,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=5000"`
	CategoryID  *uuid.UUID `json:"category_id"`
	VenueID     *uuid.UUID `json:"venue_id"`
	VenueName   *string    `json:"venue_name" binding:"omitempty,max=255"`
	Address     *string    `json:"address" binding:"omitempty,max=500"`
	City        *string    `json:"city" binding:"omitempty,max=100"`
	State       *string    `json:"state" binding:"omitempty,max=100"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	IsFree      *bool      `json:"is_free"`
	HasSeating  *bool      `json:"has_seating"`
	DressCode   *string    `json:"dress_code" binding:"omitempty,max=100"`
	ImageURL    *string    `json:"image_url" binding:"omitempty,url"`
	Tags        []string   `json:"tags" binding:"omitempty,max=10"`
}

type EventListQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search     string `form:"search"`
	City       string `form:"city"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	Status     string `form:"status" binding:"omitempty,oneof=DRAFT PUBLISHED CANCELLED COMPLETED"`
	AwardsOnly bool   `form:"awards_only"`
	FreeOnly   bool   `form:"free_only"`
}

type PaginatedEvents struct {
	Events     []EventResponse `json:"events"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Slug string `json:"slug" binding:"required,min=2,max=100,lowercase"`
}
