package sponsors

import (
	"time"

	"github.com/google/uuid"
)

// Sponsor is the public profile behind a SPONSOR account. Only
// verified profiles appear in the directory.
type Sponsor struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	CompanyName  string    `json:"company_name" gorm:"not null;size:255;index"`
	Description  string    `json:"description" gorm:"type:text"`
	LogoURL      string    `json:"logo_url" gorm:"size:500"`
	Website      string    `json:"website" gorm:"size:500"`
	Industry     string    `json:"industry" gorm:"size:100"`
	ContactEmail string    `json:"contact_email" gorm:"size:255"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Sponsor) TableName() string {
	return "sponsors"
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestDeclined RequestStatus = "DECLINED"
)

// SponsorshipRequest is an organizer asking a sponsor to back an
// event. SponsorID is always the directory entry named in the request
// path; RequesterID is the authenticated caller.
type SponsorshipRequest struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	SponsorID   uuid.UUID     `json:"sponsor_id" gorm:"type:uuid;not null;index"`
	RequesterID uuid.UUID     `json:"requester_id" gorm:"type:uuid;not null;index"`
	EventID     *uuid.UUID    `json:"event_id,omitempty" gorm:"type:uuid"`
	Message     string        `json:"message" gorm:"type:text;not null"`
	Budget      int64         `json:"budget" gorm:"not null;default:0"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (SponsorshipRequest) TableName() string {
	return "sponsorship_requests"
}

type CreateProfileRequest struct {
	CompanyName  string `json:"company_name" binding:"required,min=2,max=255"`
	Description  string `json:"description" binding:"omitempty,max=5000"`
	LogoURL      string `json:"logo_url" binding:"omitempty,url,max=500"`
	Website      string `json:"website" binding:"omitempty,url,max=500"`
	Industry     string `json:"industry" binding:"omitempty,max=100"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
}

type SponsorshipRequestBody struct {
	EventID *uuid.UUID `json:"event_id"`
	Message string     `json:"message" binding:"required,min=10,max=5000"`
	Budget  int64      `json:"budget" binding:"omitempty,min=0"`
}

type RespondRequestBody struct {
	Accept bool `json:"accept"`
}
