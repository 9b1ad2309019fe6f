package partners

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPartnerNotFound = errors.New("partner not found")
	ErrRequestNotFound = errors.New("service request not found")
)

type Repository interface {
	CreateProfile(partner *Partner) error
	GetByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Partner, error)
	ListVerified(ctx context.Context, serviceType string) ([]Partner, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error

	CreateRequest(request *ServiceRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (*ServiceRequest, error)
	ListRequestsForPartner(ctx context.Context, partnerID uuid.UUID) ([]ServiceRequest, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, from, to RequestStatus) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateProfile(partner *Partner) error {
	return r.db.Create(partner).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Partner, error) {
	var partner Partner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&partner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Partner, error) {
	var partner Partner
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&partner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *repository) ListVerified(ctx context.Context, serviceType string) ([]Partner, error) {
	db := r.db.WithContext(ctx).Where("is_verified = ?", true)
	if serviceType != "" {
		db = db.Where("service_type ILIKE ?", serviceType)
	}

	var partners []Partner
	err := db.Order("business_name ASC").Find(&partners).Error
	return partners, err
}

func (r *repository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := r.db.WithContext(ctx).Model(&Partner{}).
		Where("id = ?", id).
		Update("is_verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPartnerNotFound
	}
	return nil
}

func (r *repository) CreateRequest(request *ServiceRequest) error {
	return r.db.Create(request).Error
}

func (r *repository) GetRequest(ctx context.Context, id uuid.UUID) (*ServiceRequest, error) {
	var request ServiceRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *repository) ListRequestsForPartner(ctx context.Context, partnerID uuid.UUID) ([]ServiceRequest, error) {
	var requests []ServiceRequest
	err := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, from, to RequestStatus) error {
	result := r.db.WithContext(ctx).Model(&ServiceRequest{}).
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
