package voting

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventbuka/internal/events"
	"eventbuka/internal/shared/constants"
	"eventbuka/internal/wallet"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

var (
	ErrNotAwardEvent    = errors.New("event does not run award voting")
	ErrNotEventOwner    = errors.New("not the owner of this event")
	ErrVotingClosed     = errors.New("voting window is not open")
	ErrNomineeNotListed = errors.New("nominee is not approved for voting")
	ErrWindowInverted   = errors.New("voting window ends before it starts")
)

// TxRunner executes fn inside one database transaction. Injected so
// the paid-vote flow can be exercised without a live database.
type TxRunner func(ctx context.Context, fn func(tx *gorm.DB) error) error

func GormTxRunner(db *gorm.DB) TxRunner {
	return func(ctx context.Context, fn func(tx *gorm.DB) error) error {
		return db.WithContext(ctx).Transaction(fn)
	}
}

// EventReader is the slice of the events service the voting flow needs.
type EventReader interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*events.EventResponse, error)
}

// Notifier delivers vote receipts. Nil disables delivery.
type Notifier interface {
	VoteCast(ctx context.Context, userID uuid.UUID, categoryName, nomineeName string, amountPaid int64)
}

type Service interface {
	CreateCategory(ctx context.Context, actorID uuid.UUID, isAdmin bool, eventID uuid.UUID, req CreateCategoryRequest) (*NominationCategory, error)
	ListCategories(ctx context.Context, eventID uuid.UUID) ([]NominationCategory, error)
	CreateNominee(ctx context.Context, actorID uuid.UUID, isAdmin bool, categoryID uuid.UUID, req CreateNomineeRequest) (*Nominee, error)
	ApproveNominee(ctx context.Context, nomineeID uuid.UUID) error
	ListNominees(ctx context.Context, categoryID uuid.UUID) ([]NomineeResponse, error)
	CastVote(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID, req CastVoteRequest) (*VoteReceipt, error)
}

type service struct {
	repo         Repository
	runTx        TxRunner
	eventSvc     EventReader
	walletSvc    wallet.Service
	notifier     Notifier
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository, runTx TxRunner, eventSvc EventReader, walletSvc wallet.Service, notifier Notifier, cacheService cache.Service, log *logger.Logger) Service {
	return &service{
		repo:         repo,
		runTx:        runTx,
		eventSvc:     eventSvc,
		walletSvc:    walletSvc,
		notifier:     notifier,
		cacheService: cacheService,
		log:          log,
	}
}

func (s *service) CreateCategory(ctx context.Context, actorID uuid.UUID, isAdmin bool, eventID uuid.UUID, req CreateCategoryRequest) (*NominationCategory, error) {
	event, err := s.awardEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && event.OrganizerID != actorID.String() {
		return nil, ErrNotEventOwner
	}
	if !req.VotingEndsAt.After(req.VotingStartsAt) {
		return nil, ErrWindowInverted
	}

	price := req.VotePrice
	if !req.IsPaid {
		price = 0
	}
	category := &NominationCategory{
		EventID:        eventID,
		Name:           req.Name,
		Description:    req.Description,
		IsPaid:         req.IsPaid,
		VotePrice:      price,
		VotingStartsAt: req.VotingStartsAt,
		VotingEndsAt:   req.VotingEndsAt,
	}
	if err := s.repo.CreateCategory(category); err != nil {
		return nil, err
	}

	s.invalidateCategories(ctx, eventID)
	return category, nil
}

func (s *service) ListCategories(ctx context.Context, eventID uuid.UUID) ([]NominationCategory, error) {
	var categories []NominationCategory
	err := s.cacheService.GetOrSet(ctx,
		constants.BuildVoteCategoriesKey(eventID.String()),
		constants.TTL_VOTE_CATEGORIES,
		func() (interface{}, error) {
			return s.repo.ListCategoriesByEvent(ctx, eventID)
		},
		&categories,
	)
	return categories, err
}

func (s *service) CreateNominee(ctx context.Context, actorID uuid.UUID, isAdmin bool, categoryID uuid.UUID, req CreateNomineeRequest) (*Nominee, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventSvc.GetEvent(ctx, category.EventID)
	if err != nil {
		return nil, err
	}
	owner := event.OrganizerID == actorID.String()

	nominee := &Nominee{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		// Organizer and admin submissions go live immediately; public
		// nominations wait for approval.
		IsApproved: isAdmin || owner,
	}
	if err := s.repo.CreateNominee(nominee); err != nil {
		return nil, err
	}

	if nominee.IsApproved {
		s.invalidateNominees(ctx, categoryID)
	}
	return nominee, nil
}

func (s *service) ApproveNominee(ctx context.Context, nomineeID uuid.UUID) error {
	nominee, err := s.repo.GetNominee(ctx, nomineeID)
	if err != nil {
		return err
	}
	if err := s.repo.ApproveNominee(ctx, nomineeID); err != nil {
		return err
	}
	s.invalidateNominees(ctx, nominee.CategoryID)
	return nil
}

func (s *service) ListNominees(ctx context.Context, categoryID uuid.UUID) ([]NomineeResponse, error) {
	if _, err := s.repo.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	var responses []NomineeResponse
	err := s.cacheService.GetOrSet(ctx,
		constants.BuildNomineesKey(categoryID.String()),
		constants.TTL_NOMINEES,
		func() (interface{}, error) {
			nominees, err := s.repo.ListApprovedNominees(ctx, categoryID)
			if err != nil {
				return nil, err
			}
			out := make([]NomineeResponse, len(nominees))
			for i, nominee := range nominees {
				out[i] = nominee.ToResponse()
			}
			return out, nil
		},
		&responses,
	)
	return responses, err
}

// CastVote inserts the vote row, bumps the nominee's counter and, for
// paid categories, debits the voter's wallet, all in one transaction.
func (s *service) CastVote(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID, req CastVoteRequest) (*VoteReceipt, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !category.Open(time.Now()) {
		return nil, ErrVotingClosed
	}

	nominee, err := s.repo.GetNominee(ctx, req.NomineeID)
	if err != nil {
		return nil, err
	}
	if nominee.CategoryID != categoryID || !nominee.IsApproved {
		return nil, ErrNomineeNotListed
	}

	amount := int64(0)
	if category.IsPaid {
		amount = category.VotePrice
	}

	vote := &Vote{
		UserID:     userID,
		CategoryID: categoryID,
		NomineeID:  nominee.ID,
		AmountPaid: amount,
	}

	err = s.runTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.InsertVote(tx, vote); err != nil {
			return err
		}
		if err := s.repo.BumpVoteCount(tx, nominee.ID); err != nil {
			return err
		}
		if amount > 0 {
			relatedID := vote.ID
			_, err := s.walletSvc.DebitTx(tx, userID, amount, wallet.TypeVote,
				"Vote for "+nominee.Name+" in "+category.Name, &relatedID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.LogVoteCast(ctx, categoryID.String(), nominee.ID.String(), userID.String())
	if s.notifier != nil {
		s.notifier.VoteCast(ctx, userID, category.Name, nominee.Name, amount)
	}
	s.invalidateNominees(ctx, categoryID)

	return &VoteReceipt{
		VoteID:     vote.ID.String(),
		CategoryID: categoryID.String(),
		NomineeID:  nominee.ID.String(),
		AmountPaid: amount,
	}, nil
}

func (s *service) awardEvent(ctx context.Context, eventID uuid.UUID) (*events.EventResponse, error) {
	event, err := s.eventSvc.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsAwardEvent {
		return nil, ErrNotAwardEvent
	}
	return event, nil
}

func (s *service) invalidateCategories(ctx context.Context, eventID uuid.UUID) {
	if err := s.cacheService.Delete(ctx, constants.BuildVoteCategoriesKey(eventID.String())); err != nil {
		s.log.Warn("failed to invalidate vote categories cache", "event_id", eventID.String(), "error", err)
	}
}

func (s *service) invalidateNominees(ctx context.Context, categoryID uuid.UUID) {
	if err := s.cacheService.Delete(ctx, constants.BuildNomineesKey(categoryID.String())); err != nil {
		s.log.Warn("failed to invalidate nominees cache", "category_id", categoryID.String(), "error", err)
	}
}
