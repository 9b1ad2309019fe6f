package users

import (
	"time"

	"github.com/google/uuid"

	"eventbuka/internal/shared/roles"
)

// Role is re-exported from the shared roles package so callers keep
// referring to users.RoleAdmin etc.
type Role = roles.Role

const (
	RoleAdmin     = roles.Admin
	RoleOrganizer = roles.Organizer
	RoleUser      = roles.User
	RoleSponsor   = roles.Sponsor
	RolePartner   = roles.Partner
)

func IsValidRole(role string) bool {
	return roles.IsValid(role)
}

// User is an EventBuka account. WalletBalance is whole naira (int64);
// the wallet service is the only writer of that column.
type User struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FullName   string    `json:"full_name" gorm:"not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"not null"` // hide in json
	Phone      string    `json:"phone"`
	AvatarURL  string    `json:"avatar_url" gorm:"size:500"`
	Role       Role      `json:"role" gorm:"not null;default:'USER'"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"`

	WalletBalance int64 `json:"wallet_balance" gorm:"not null;default:0;check:wallet_balance >= 0"`

	// Organizer / sponsor / partner business metadata
	BusinessName string `json:"business_name,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	Website      string `json:"website,omitempty" gorm:"size:500"`
	Description  string `json:"description,omitempty" gorm:"type:text"`
	Location     string `json:"location,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// OrganizerApplication is a user's request to become an event organizer,
// reviewed by an admin.
type OrganizerApplication struct {
	ID           uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;index;not null"`
	BusinessName string     `json:"business_name" gorm:"not null"`
	BusinessType string     `json:"business_type" gorm:"not null"`
	Description  string     `json:"description" gorm:"type:text"`
	Status       string     `json:"status" gorm:"type:varchar(20);check:status IN ('PENDING', 'APPROVED', 'REJECTED');default:'PENDING'"`
	ReviewedBy   *uuid.UUID `json:"reviewed_by,omitempty" gorm:"type:uuid"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (OrganizerApplication) TableName() string {
	return "organizer_applications"
}

type ProfileResponse struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	Role          string    `json:"role"`
	IsVerified    bool      `json:"is_verified"`
	WalletBalance int64     `json:"wallet_balance"`
	BusinessName  string    `json:"business_name,omitempty"`
	BusinessType  string    `json:"business_type,omitempty"`
	Website       string    `json:"website,omitempty"`
	Location      string    `json:"location,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u *User) ToProfile() ProfileResponse {
	return ProfileResponse{
		ID:            u.ID.String(),
		FullName:      u.FullName,
		Email:         u.Email,
		Phone:         u.Phone,
		AvatarURL:     u.AvatarURL,
		Role:          string(u.Role),
		IsVerified:    u.IsVerified,
		WalletBalance: u.WalletBalance,
		BusinessName:  u.BusinessName,
		BusinessType:  u.BusinessType,
		Website:       u.Website,
		Location:      u.Location,
		CreatedAt:     u.CreatedAt,
	}
}

type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
	Website   *string `json:"website" binding:"omitempty,url"`
	Location  *string `json:"location" binding:"omitempty,max=255"`
}

type OrganizerApplicationRequest struct {
	BusinessName string `json:"business_name" binding:"required,min=2,max=255"`
	BusinessType string `json:"business_type" binding:"required,min=2,max=100"`
	Description  string `json:"description" binding:"max=2000"`
}

type ReviewApplicationRequest struct {
	Approve bool `json:"approve"`
}
