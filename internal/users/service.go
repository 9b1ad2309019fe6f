package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrApplicationPending = errors.New("an organizer application is already pending")
	ErrAlreadyOrganizer   = errors.New("user is already an organizer")
)

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error)
	ListUsers(ctx context.Context, role string, page, limit int) ([]ProfileResponse, int64, error)

	ApplyForOrganizer(ctx context.Context, userID uuid.UUID, req OrganizerApplicationRequest) (*OrganizerApplication, error)
	ListApplications(ctx context.Context, status string) ([]OrganizerApplication, error)
	ReviewApplication(ctx context.Context, applicationID, reviewerID uuid.UUID, approve bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	profile := user.ToProfile()
	return &profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	updates := make(map[string]interface{})
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if len(updates) == 0 {
		return s.GetProfile(ctx, userID)
	}

	user, err := s.repo.Update(ctx, userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	profile := user.ToProfile()
	return &profile, nil
}

func (s *service) ListUsers(ctx context.Context, role string, page, limit int) ([]ProfileResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	result, total, err := s.repo.List(ctx, role, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	profiles := make([]ProfileResponse, 0, len(result))
	for _, user := range result {
		profiles = append(profiles, user.ToProfile())
	}
	return profiles, total, nil
}

func (s *service) ApplyForOrganizer(ctx context.Context, userID uuid.UUID, req OrganizerApplicationRequest) (*OrganizerApplication, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Role == RoleOrganizer || user.Role == RoleAdmin {
		return nil, ErrAlreadyOrganizer
	}

	if _, err := s.repo.GetPendingApplicationByUser(ctx, userID); err == nil {
		return nil, ErrApplicationPending
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	app := &OrganizerApplication{
		UserID:       userID,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Description:  req.Description,
		Status:       "PENDING",
	}
	if err := s.repo.CreateApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}
	return app, nil
}

func (s *service) ListApplications(ctx context.Context, status string) ([]OrganizerApplication, error) {
	return s.repo.ListApplications(ctx, status)
}

func (s *service) ReviewApplication(ctx context.Context, applicationID, reviewerID uuid.UUID, approve bool) error {
	app, err := s.repo.GetApplication(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("application not found")
		}
		return err
	}
	if app.Status != "PENDING" {
		return fmt.Errorf("application has already been reviewed")
	}
	return s.repo.ReviewApplication(ctx, app, approve, reviewerID)
}
