package sponsors

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"eventbuka/internal/shared/constants"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

var (
	ErrProfileExists     = errors.New("sponsor profile already exists")
	ErrNotRequestTarget  = errors.New("request is addressed to another sponsor")
	ErrRequestNotPending = errors.New("request has already been answered")
)

type Service interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) (*Sponsor, error)
	GetSponsor(ctx context.Context, id uuid.UUID) (*Sponsor, error)
	ListVerified(ctx context.Context) ([]Sponsor, error)
	VerifySponsor(ctx context.Context, id uuid.UUID) error

	// RequestSponsorship records a request from requesterID addressed
	// to the sponsor whose id came from the URL path.
	RequestSponsorship(ctx context.Context, requesterID, sponsorID uuid.UUID, req SponsorshipRequestBody) (*SponsorshipRequest, error)
	ListMyRequests(ctx context.Context, sponsorUserID uuid.UUID) ([]SponsorshipRequest, error)
	RespondToRequest(ctx context.Context, sponsorUserID, requestID uuid.UUID, accept bool) error
}

type service struct {
	repo         Repository
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, log *logger.Logger) Service {
	return &service{repo: repo, cacheService: cacheService, log: log}
}

func (s *service) CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) (*Sponsor, error) {
	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, ErrSponsorNotFound) {
		return nil, err
	}

	sponsor := &Sponsor{
		UserID:       userID,
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		Website:      req.Website,
		Industry:     req.Industry,
		ContactEmail: req.ContactEmail,
	}
	if err := s.repo.CreateProfile(sponsor); err != nil {
		return nil, err
	}
	return sponsor, nil
}

func (s *service) GetSponsor(ctx context.Context, id uuid.UUID) (*Sponsor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListVerified(ctx context.Context) ([]Sponsor, error) {
	var sponsors []Sponsor
	err := s.cacheService.GetOrSet(ctx,
		constants.CACHE_KEY_SPONSORS_LIST,
		constants.TTL_SPONSORS_LIST,
		func() (interface{}, error) {
			listed, err := s.repo.ListVerified(ctx)
			if err != nil {
				return nil, err
			}
			if listed == nil {
				listed = []Sponsor{}
			}
			return listed, nil
		},
		&sponsors,
	)
	return sponsors, err
}

func (s *service) VerifySponsor(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetVerified(ctx, id, true); err != nil {
		return err
	}
	s.invalidateListing(ctx)
	return nil
}

func (s *service) RequestSponsorship(ctx context.Context, requesterID, sponsorID uuid.UUID, req SponsorshipRequestBody) (*SponsorshipRequest, error) {
	if _, err := s.repo.GetByID(ctx, sponsorID); err != nil {
		return nil, err
	}

	request := &SponsorshipRequest{
		SponsorID:   sponsorID,
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

func (s *service) ListMyRequests(ctx context.Context, sponsorUserID uuid.UUID) ([]SponsorshipRequest, error) {
	sponsor, err := s.repo.GetByUserID(ctx, sponsorUserID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRequestsForSponsor(ctx, sponsor.ID)
}

func (s *service) RespondToRequest(ctx context.Context, sponsorUserID, requestID uuid.UUID, accept bool) error {
	sponsor, err := s.repo.GetByUserID(ctx, sponsorUserID)
	if err != nil {
		return err
	}

	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.SponsorID != sponsor.ID {
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

func (s *service) invalidateListing(ctx context.Context) {
	if err := s.cacheService.Delete(ctx, constants.CACHE_KEY_SPONSORS_LIST); err != nil {
		s.log.DebugWithContext(ctx, "sponsor cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
