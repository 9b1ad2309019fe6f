package voting

import (
	"time"

	"github.com/google/uuid"
)

// NominationCategory is one award category on an award event. A paid
// category charges VotePrice (whole naira) per vote from the voter's
// wallet; a free category charges nothing. Votes are only accepted
// inside the [VotingStartsAt, VotingEndsAt] window.
type NominationCategory struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID        uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	Name           string    `json:"name" gorm:"not null;size:255"`
	Description    string    `json:"description" gorm:"type:text"`
	IsPaid         bool      `json:"is_paid" gorm:"default:false"`
	VotePrice      int64     `json:"vote_price" gorm:"not null;default:0;check:vote_price >= 0"`
	VotingStartsAt time.Time `json:"voting_starts_at" gorm:"not null"`
	VotingEndsAt   time.Time `json:"voting_ends_at" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (NominationCategory) TableName() string {
	return "nomination_categories"
}

// Open reports whether the voting window contains t.
func (c *NominationCategory) Open(t time.Time) bool {
	return !t.Before(c.VotingStartsAt) && !t.After(c.VotingEndsAt)
}

// Nominee only appears on public listings and accepts votes once an
// admin or the organizer approves it.
type Nominee struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CategoryID  uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"size:500"`
	IsApproved  bool      `json:"is_approved" gorm:"default:false;index"`
	VoteCount   int64     `json:"vote_count" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Nominee) TableName() string {
	return "nominees"
}

// Vote rows carry the amount actually charged so paid-vote receipts
// survive later price changes. One vote per user per category,
// enforced by the unique_vote_per_category index.
type Vote struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null"`
	NomineeID  uuid.UUID `json:"nominee_id" gorm:"type:uuid;not null;index"`
	AmountPaid int64     `json:"amount_paid" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Vote) TableName() string {
	return "votes"
}

type CreateCategoryRequest struct {
	Name           string    `json:"name" binding:"required,min=2,max=255"`
	Description    string    `json:"description" binding:"omitempty,max=2000"`
	IsPaid         bool      `json:"is_paid"`
	VotePrice      int64     `json:"vote_price" binding:"omitempty,min=0"`
	VotingStartsAt time.Time `json:"voting_starts_at" binding:"required"`
	VotingEndsAt   time.Time `json:"voting_ends_at" binding:"required"`
}

type CreateNomineeRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	ImageURL    string `json:"image_url" binding:"omitempty,url,max=500"`
}

type CastVoteRequest struct {
	NomineeID uuid.UUID `json:"nominee_id" binding:"required"`
}

type NomineeResponse struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	VoteCount   int64  `json:"vote_count"`
}

func (n *Nominee) ToResponse() NomineeResponse {
	return NomineeResponse{
		ID:          n.ID.String(),
		CategoryID:  n.CategoryID.String(),
		Name:        n.Name,
		Description: n.Description,
		ImageURL:    n.ImageURL,
		VoteCount:   n.VoteCount,
	}
}

type VoteReceipt struct {
	VoteID     string `json:"vote_id"`
	CategoryID string `json:"category_id"`
	NomineeID  string `json:"nominee_id"`
	AmountPaid int64  `json:"amount_paid"`
}
