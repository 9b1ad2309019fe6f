package sponsors

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSponsorNotFound = errors.New("sponsor not found")
	ErrRequestNotFound = errors.New("sponsorship request not found")
)

type Repository interface {
	CreateProfile(sponsor *Sponsor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Sponsor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Sponsor, error)
	ListVerified(ctx context.Context) ([]Sponsor, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error

	CreateRequest(request *SponsorshipRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (*SponsorshipRequest, error)
	ListRequestsForSponsor(ctx context.Context, sponsorID uuid.UUID) ([]SponsorshipRequest, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, from, to RequestStatus) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateProfile(sponsor *Sponsor) error {
	return r.db.Create(sponsor).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Sponsor, error) {
	var sponsor Sponsor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sponsor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, err
	}
	return &sponsor, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Sponsor, error) {
	var sponsor Sponsor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&sponsor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, err
	}
	return &sponsor, nil
}

func (r *repository) ListVerified(ctx context.Context) ([]Sponsor, error) {
	var sponsors []Sponsor
	err := r.db.WithContext(ctx).
		Where("is_verified = ?", true).
		Order("company_name ASC").
		Find(&sponsors).Error
	return sponsors, err
}

func (r *repository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := r.db.WithContext(ctx).Model(&Sponsor{}).
		Where("id = ?", id).
		Update("is_verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSponsorNotFound
	}
	return nil
}

func (r *repository) CreateRequest(request *SponsorshipRequest) error {
	return r.db.Create(request).Error
}

func (r *repository) GetRequest(ctx context.Context, id uuid.UUID) (*SponsorshipRequest, error) {
	var request SponsorshipRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *repository) ListRequestsForSponsor(ctx context.Context, sponsorID uuid.UUID) ([]SponsorshipRequest, error) {
	var requests []SponsorshipRequest
	err := r.db.WithContext(ctx).
		Where("sponsor_id = ?", sponsorID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, from, to RequestStatus) error {
	result := r.db.WithContext(ctx).Model(&SponsorshipRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
