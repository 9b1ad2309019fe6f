package partners

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"eventbuka/internal/shared/constants"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

var (
	ErrProfileExists     = errors.New("partner profile already exists")
	ErrNotRequestTarget  = errors.New("request is addressed to another partner")
	ErrRequestNotPending = errors.New("request has already been answered")
)

type Service interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) (*Partner, error)
	GetPartner(ctx context.Context, id uuid.UUID) (*Partner, error)
	ListVerified(ctx context.Context, serviceType string) ([]Partner, error)
	VerifyPartner(ctx context.Context, id uuid.UUID) error

	// RequestService records a request from requesterID addressed to
	// the partner whose id came from the URL path.
	RequestService(ctx context.Context, requesterID, partnerID uuid.UUID, req ServiceRequestBody) (*ServiceRequest, error)
	ListMyRequests(ctx context.Context, partnerUserID uuid.UUID) ([]ServiceRequest, error)
	RespondToRequest(ctx context.Context, partnerUserID, requestID uuid.UUID, accept bool) error
}

type service struct {
	repo         Repository
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, log *logger.Logger) Service {
	return &service{repo: repo, cacheService: cacheService, log: log}
}

func (s *service) CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) (*Partner, error) {
	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, ErrPartnerNotFound) {
		return nil, err
	}

	partner := &Partner{
		UserID:       userID,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		ServiceType:  strings.ToLower(req.ServiceType),
		LogoURL:      req.LogoURL,
		Website:      req.Website,
		City:         req.City,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}
	if err := s.repo.CreateProfile(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *service) GetPartner(ctx context.Context, id uuid.UUID) (*Partner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListVerified(ctx context.Context, serviceType string) ([]Partner, error) {
	serviceType = strings.ToLower(strings.TrimSpace(serviceType))

	var partners []Partner
	err := s.cacheService.GetOrSet(ctx,
		constants.BuildPartnersListKey(serviceType),
		constants.TTL_PARTNERS_LIST,
		func() (interface{}, error) {
			listed, err := s.repo.ListVerified(ctx, serviceType)
			if err != nil {
				return nil, err
			}
			if listed == nil {
				listed = []Partner{}
			}
			return listed, nil
		},
		&partners,
	)
	return partners, err
}

func (s *service) VerifyPartner(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetVerified(ctx, id, true); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *service) RequestService(ctx context.Context, requesterID, partnerID uuid.UUID, req ServiceRequestBody) (*ServiceRequest, error) {
	if _, err := s.repo.GetByID(ctx, partnerID); err != nil {
		return nil, err
	}

	request := &ServiceRequest{
		PartnerID:   partnerID,
		RequesterID: requesterID,
		EventID:     req.EventID,
		Message:     req.Message,
		Budget:      req.Budget,
		Status:      RequestPending,
	}
	if err := s.repo.CreateRequest(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *service) ListMyRequests(ctx context.Context, partnerUserID uuid.UUID) ([]ServiceRequest, error) {
	partner, err := s.repo.GetByUserID(ctx, partnerUserID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRequestsForPartner(ctx, partner.ID)
}

func (s *service) RespondToRequest(ctx context.Context, partnerUserID, requestID uuid.UUID, accept bool) error {
	partner, err := s.repo.GetByUserID(ctx, partnerUserID)
	if err != nil {
		return err
	}

	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.PartnerID != partner.ID {
		return ErrNotRequestTarget
	}
	if request.Status != RequestPending {
		return ErrRequestNotPending
	}

	status := RequestDeclined
	if accept {
		status = RequestAccepted
	}
	if err := s.repo.UpdateRequestStatus(ctx, requestID, RequestPending, status); err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return ErrRequestNotPending
		}
		return err
	}
	return nil
}

func (s *service) invalidateListings(ctx context.Context) {
	if err := s.cacheService.DeletePattern(ctx, constants.CACHE_KEY_PARTNERS_LIST+"*"); err != nil {
		s.log.DebugWithContext(ctx, "partner cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
