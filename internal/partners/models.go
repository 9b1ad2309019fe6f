package partners

import (
	"time"

	"github.com/google/uuid"
)

// Partner is a service vendor profile (catering, security, sound and
// so on) behind a PARTNER account. Only verified profiles are listed.
type Partner struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName string    `json:"business_name" gorm:"not null;size:255;index"`
	Description  string    `json:"description" gorm:"type:text"`
	ServiceType  string    `json:"service_type" gorm:"not null;size:100;index"`
	LogoURL      string    `json:"logo_url" gorm:"size:500"`
	Website      string    `json:"website" gorm:"size:500"`
	City         string    `json:"city" gorm:"size:100"`
	ContactEmail string    `json:"contact_email" gorm:"size:255"`
	ContactPhone string    `json:"contact_phone" gorm:"size:50"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Partner) TableName() string {
	return "partners"
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestDeclined RequestStatus = "DECLINED"
)

// ServiceRequest is an organizer hiring a partner for an event.
// PartnerID is always the directory entry named in the request path;
// RequesterID is the authenticated caller.
type ServiceRequest struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PartnerID   uuid.UUID     `json:"partner_id" gorm:"type:uuid;not null;index"`
	RequesterID uuid.UUID     `json:"requester_id" gorm:"type:uuid;not null;index"`
	EventID     *uuid.UUID    `json:"event_id,omitempty" gorm:"type:uuid"`
	Message     string        `json:"message" gorm:"type:text;not null"`
	Budget      int64         `json:"budget" gorm:"not null;default:0"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}

type CreateProfileRequest struct {
	BusinessName string `json:"business_name" binding:"required,min=2,max=255"`
	Description  string `json:"description" binding:"omitempty,max=5000"`
	ServiceType  string `json:"service_type" binding:"required,min=2,max=100"`
	LogoURL      string `json:"logo_url" binding:"omitempty,url,max=500"`
	Website      string `json:"website" binding:"omitempty,url,max=500"`
	City         string `json:"city" binding:"omitempty,max=100"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"omitempty,max=50"`
}

type ServiceRequestBody struct {
	EventID *uuid.UUID `json:"event_id"`
	Message string     `json:"message" binding:"required,min=10,max=5000"`
	Budget  int64      `json:"budget" binding:"omitempty,min=0"`
}

type RespondRequestBody struct {
	Accept bool `json:"accept"`
}
