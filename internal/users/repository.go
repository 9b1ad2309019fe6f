package users

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*User, error)
	List(ctx context.Context, role string, limit, offset int) ([]User, int64, error)

	CreateApplication(ctx context.Context, app *OrganizerApplication) error
	GetApplication(ctx context.Context, id uuid.UUID) (*OrganizerApplication, error)
	GetPendingApplicationByUser(ctx context.Context, userID uuid.UUID) (*OrganizerApplication, error)
	ListApplications(ctx context.Context, status string) ([]OrganizerApplication, error)
	ReviewApplication(ctx context.Context, app *OrganizerApplication, approve bool, reviewerID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*User, error) {
	if err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *repository) List(ctx context.Context, role string, limit, offset int) ([]User, int64, error) {
	var result []User
	var total int64

	db := r.db.WithContext(ctx).Model(&User{})
	if role != "" {
		db = db.Where("role = ?", role)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&result).Error
	return result, total, err
}

func (r *repository) CreateApplication(ctx context.Context, app *OrganizerApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) GetApplication(ctx context.Context, id uuid.UUID) (*OrganizerApplication, error) {
	var app OrganizerApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) GetPendingApplicationByUser(ctx context.Context, userID uuid.UUID) (*OrganizerApplication, error) {
	var app OrganizerApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "PENDING").
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) ListApplications(ctx context.Context, status string) ([]OrganizerApplication, error) {
	var apps []OrganizerApplication
	db := r.db.WithContext(ctx).Model(&OrganizerApplication{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("created_at ASC").Find(&apps).Error
	return apps, err
}

// ReviewApplication applies the review verdict and, on approval, promotes
// the applicant in the same transaction so a crash cannot leave a user
// approved but not promoted.
func (r *repository) ReviewApplication(ctx context.Context, app *OrganizerApplication, approve bool, reviewerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		status := "REJECTED"
		if approve {
			status = "APPROVED"
		}

		if err := tx.Model(app).Updates(map[string]interface{}{
			"status":      status,
			"reviewed_by": reviewerID,
			"reviewed_at": gorm.Expr("NOW()"),
		}).Error; err != nil {
			return err
		}

		if !approve {
			return nil
		}

		return tx.Model(&User{}).Where("id = ?", app.UserID).Updates(map[string]interface{}{
			"role":          RoleOrganizer,
			"business_name": app.BusinessName,
			"business_type": app.BusinessType,
			"is_verified":   true,
		}).Error
	})
}
