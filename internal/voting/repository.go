package voting

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("nomination category not found")
	ErrNomineeNotFound  = errors.New("nominee not found")
	ErrAlreadyVoted     = errors.New("already voted in this category")
)

type Repository interface {
	CreateCategory(category *NominationCategory) error
	GetCategory(ctx context.Context, id uuid.UUID) (*NominationCategory, error)
	ListCategoriesByEvent(ctx context.Context, eventID uuid.UUID) ([]NominationCategory, error)

	CreateNominee(nominee *Nominee) error
	GetNominee(ctx context.Context, id uuid.UUID) (*Nominee, error)
	ListApprovedNominees(ctx context.Context, categoryID uuid.UUID) ([]Nominee, error)
	ApproveNominee(ctx context.Context, id uuid.UUID) error

	// InsertVote and BumpVoteCount run inside the caster's transaction
	// so the vote row and the counter move together.
	InsertVote(tx *gorm.DB, vote *Vote) error
	BumpVoteCount(tx *gorm.DB, nomineeID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateCategory(category *NominationCategory) error {
	return r.db.Create(category).Error
}

func (r *repository) GetCategory(ctx context.Context, id uuid.UUID) (*NominationCategory, error) {
	var category NominationCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *repository) ListCategoriesByEvent(ctx context.Context, eventID uuid.UUID) ([]NominationCategory, error) {
	var categories []NominationCategory
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&categories).Error
	return categories, err
}

func (r *repository) CreateNominee(nominee *Nominee) error {
	return r.db.Create(nominee).Error
}

func (r *repository) GetNominee(ctx context.Context, id uuid.UUID) (*Nominee, error) {
	var nominee Nominee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&nominee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNomineeNotFound
		}
		return nil, err
	}
	return &nominee, nil
}

func (r *repository) ListApprovedNominees(ctx context.Context, categoryID uuid.UUID) ([]Nominee, error) {
	var nominees []Nominee
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND is_approved = ?", categoryID, true).
		Order("vote_count DESC, created_at ASC").
		Find(&nominees).Error
	return nominees, err
}

func (r *repository) ApproveNominee(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&Nominee{}).
		Where("id = ?", id).
		Update("is_approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNomineeNotFound
	}
	return nil
}

func (r *repository) InsertVote(tx *gorm.DB, vote *Vote) error {
	err := tx.Create(vote).Error
	if err != nil {
		// unique_vote_per_category rejects a second vote; Postgres
		// reports it as a duplicate key violation.
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return ErrAlreadyVoted
		}
		return err
	}
	return nil
}

func (r *repository) BumpVoteCount(tx *gorm.DB, nomineeID uuid.UUID) error {
	result := tx.Model(&Nominee{}).
		Where("id = ?", nomineeID).
		Update("vote_count", gorm.Expr("vote_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNomineeNotFound
	}
	return nil
}
