package bookings

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventbuka/internal/events"
	"eventbuka/internal/seats"
	"eventbuka/internal/shared/constants"
	"eventbuka/internal/tickets"
	"eventbuka/internal/wallet"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

var (
	ErrEventNotBookable = errors.New("event is not open for booking")
	ErrTicketMismatch   = errors.New("ticket type does not belong to this event")
	ErrSoldOut          = errors.New("requested tickets are sold out")
	ErrNotBookingOwner  = errors.New("booking does not belong to this user")
	ErrNotCancellable   = errors.New("booking cannot be cancelled")
	ErrEventHasNoSeats  = errors.New("event does not use seat booking")
)

// TxRunner executes fn inside one database transaction. It exists so
// the purchase flows can be exercised without a live database.
type TxRunner func(ctx context.Context, fn func(tx *gorm.DB) error) error

// GormTxRunner adapts a gorm connection to TxRunner.
func GormTxRunner(db *gorm.DB) TxRunner {
	return func(ctx context.Context, fn func(tx *gorm.DB) error) error {
		return db.WithContext(ctx).Transaction(fn)
	}
}

// EventReader is the slice of the events service bookings needs.
type EventReader interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*events.EventResponse, error)
}

// Notifier publishes booking lifecycle notifications. Implementations
// must not block the request path.
type Notifier interface {
	BookingConfirmed(ctx context.Context, userID uuid.UUID, reference string, eventID uuid.UUID, total int64)
	BookingCancelled(ctx context.Context, userID uuid.UUID, reference string, eventID uuid.UUID, refund int64)
}

type Service interface {
	BookTickets(ctx context.Context, userID uuid.UUID, req TicketBookingRequest) (*BookingResponse, error)
	BookSeats(ctx context.Context, userID uuid.UUID, req SeatBookingRequest) (*BookingResponse, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID, isAdmin bool) (*BookingResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID, isAdmin bool) (*BookingResponse, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID, page, limit int) (*PaginatedBookings, error)
}

type service struct {
	repo       Repository
	runTx      TxRunner
	ticketRepo tickets.Repository
	seatSvc    seats.Service
	eventSvc   EventReader
	walletSvc  wallet.Service
	notifier   Notifier
	cache      cache.Service
	log        *logger.Logger
}

func NewService(
	repo Repository,
	runTx TxRunner,
	ticketRepo tickets.Repository,
	seatSvc seats.Service,
	eventSvc EventReader,
	walletSvc wallet.Service,
	notifier Notifier,
	cacheService cache.Service,
	log *logger.Logger,
) Service {
	return &service{
		repo:       repo,
		runTx:      runTx,
		ticketRepo: ticketRepo,
		seatSvc:    seatSvc,
		eventSvc:   eventSvc,
		walletSvc:  walletSvc,
		notifier:   notifier,
		cache:      cacheService,
		log:        log,
	}
}

func (s *service) BookTickets(ctx context.Context, userID uuid.UUID, req TicketBookingRequest) (*BookingResponse, error) {
	event, err := s.bookableEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	ticketType, err := s.ticketRepo.GetByID(req.TicketTypeID)
	if err != nil {
		return nil, err
	}
	if ticketType.EventID != req.EventID {
		return nil, ErrTicketMismatch
	}

	// Clamp the requested quantity against live inventory the same
	// way the interactive selector does.
	selector := tickets.NewQuantitySelector([]tickets.Line{{
		TicketTypeID: ticketType.ID.String(),
		Name:         ticketType.Name,
		UnitPrice:    ticketType.Price,
		Remaining:    ticketType.Remaining(),
	}})
	quantity := selector.Add(ticketType.ID.String(), req.Quantity)
	if quantity == 0 {
		return nil, ErrSoldOut
	}
	total := selector.GrandTotal()

	reference, err := generateBookingReference()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticketTypeID := ticketType.ID
	booking := &Booking{
		Reference:    reference,
		UserID:       userID,
		EventID:      req.EventID,
		Kind:         KindTicket,
		Status:       StatusConfirmed,
		TotalAmount:  total,
		Quantity:     quantity,
		TicketTypeID: &ticketTypeID,
		PaymentRef:   req.PaymentRef,
		ConfirmedAt:  &now,
	}

	err = s.runTx(ctx, func(tx *gorm.DB) error {
		if err := s.ticketRepo.Sell(tx, ticketType.ID, quantity); err != nil {
			return err
		}
		if total > 0 && req.PaymentRef == "" {
			if _, err := s.walletSvc.DebitTx(tx, userID, total, wallet.TypePayment,
				fmt.Sprintf("%d x %s for %s", quantity, ticketType.Name, event.Title), nil); err != nil {
				return err
			}
		}
		return s.repo.Create(tx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.afterConfirm(ctx, booking)

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) BookSeats(ctx context.Context, userID uuid.UUID, req SeatBookingRequest) (*BookingResponse, error) {
	event, err := s.bookableEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if !event.HasSeating {
		return nil, ErrEventHasNoSeats
	}

	quote, err := s.seatSvc.Quote(ctx, req.EventID, req.SeatLabels)
	if err != nil {
		return nil, err
	}

	reference, err := generateBookingReference()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &Booking{
		Reference:   reference,
		UserID:      userID,
		EventID:     req.EventID,
		Kind:        KindSeat,
		Status:      StatusConfirmed,
		TotalAmount: quote.Total,
		Quantity:    len(quote.SeatLabels),
		PaymentRef:  req.PaymentRef,
		ConfirmedAt: &now,
	}
	for _, label := range quote.SeatLabels {
		booking.Seats = append(booking.Seats, BookingSeat{
			EventID:   req.EventID,
			SeatLabel: label,
			Price:     quote.SeatPrices[label],
		})
	}

	err = s.runTx(ctx, func(tx *gorm.DB) error {
		if err := s.seatSvc.MarkBooked(ctx, tx, req.EventID, quote.SeatLabels); err != nil {
			return err
		}
		if quote.Total > 0 && req.PaymentRef == "" {
			if _, err := s.walletSvc.DebitTx(tx, userID, quote.Total, wallet.TypePayment,
				fmt.Sprintf("%d seat(s) for %s", len(quote.SeatLabels), event.Title), nil); err != nil {
				return err
			}
		}
		return s.repo.Create(tx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.log.LogSeatsBooked(ctx, booking.ID.String(), req.EventID.String(), len(quote.SeatLabels))
	s.afterConfirm(ctx, booking)

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID, isAdmin bool) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if booking.Status != StatusConfirmed {
		return nil, ErrNotCancellable
	}

	event, err := s.eventSvc.GetEvent(ctx, booking.EventID)
	if err != nil {
		return nil, err
	}
	if time.Now().After(event.StartTime) {
		return nil, ErrNotCancellable
	}

	err = s.runTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.UpdateStatus(tx, booking.ID, StatusConfirmed, StatusCancelled); err != nil {
			return err
		}

		switch booking.Kind {
		case KindTicket:
			if err := s.ticketRepo.Restock(tx, *booking.TicketTypeID, booking.Quantity); err != nil {
				return err
			}
		case KindSeat:
			labels := make([]string, 0, len(booking.Seats))
			for _, seat := range booking.Seats {
				labels = append(labels, seat.SeatLabel)
			}
			if err := s.seatSvc.Release(ctx, tx, booking.EventID, labels); err != nil {
				return err
			}
			if err := s.repo.DeleteSeats(tx, booking.ID); err != nil {
				return err
			}
		}

		// Externally settled bookings are refunded by the gateway, not
		// the wallet.
		if booking.TotalAmount > 0 && booking.PaymentRef == "" {
			relatedID := booking.ID
			if _, err := s.walletSvc.CreditTx(tx, booking.UserID, booking.TotalAmount, wallet.TypeRefund,
				"Refund for booking "+booking.Reference, &relatedID); err != nil {
				return err
			}
		}

		return s.repo.SetCancelledAt(tx, booking.ID, time.Now())
	})
	if err != nil {
		return nil, err
	}

	booking.Status = StatusCancelled
	now := time.Now()
	booking.CancelledAt = &now

	s.log.LogBookingCancelled(ctx, booking.ID.String(), booking.EventID.String(), booking.UserID.String())
	if s.notifier != nil {
		s.notifier.BookingCancelled(ctx, booking.UserID, booking.Reference, booking.EventID, booking.TotalAmount)
	}
	s.invalidateUserBookings(ctx, booking.UserID)

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) GetBooking(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID, isAdmin bool) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) ListUserBookings(ctx context.Context, userID uuid.UUID, page, limit int) (*PaginatedBookings, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var result PaginatedBookings
	key := constants.BuildUserBookingsKey(userID.String(), page)
	err := s.cache.GetOrSet(ctx, key, constants.TTL_USER_BOOKINGS,
		func() (interface{}, error) {
			bookings, total, err := s.repo.ListByUser(ctx, userID, page, limit)
			if err != nil {
				return nil, err
			}

			responses := make([]BookingResponse, len(bookings))
			for i := range bookings {
				responses[i] = bookings[i].ToResponse()
			}
			return PaginatedBookings{
				Bookings:   responses,
				TotalCount: total,
				Page:       page,
				Limit:      limit,
			}, nil
		}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) bookableEvent(ctx context.Context, eventID uuid.UUID) (*events.EventResponse, error) {
	event, err := s.eventSvc.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != events.StatusPublished || time.Now().After(event.StartTime) {
		return nil, ErrEventNotBookable
	}
	return event, nil
}

func (s *service) afterConfirm(ctx context.Context, booking *Booking) {
	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.EventID.String(), booking.UserID.String())
	if s.notifier != nil {
		s.notifier.BookingConfirmed(ctx, booking.UserID, booking.Reference, booking.EventID, booking.TotalAmount)
	}
	s.invalidateUserBookings(ctx, booking.UserID)
}

func (s *service) invalidateUserBookings(ctx context.Context, userID uuid.UUID) {
	pattern := constants.CACHE_KEY_USER_BOOKINGS + userID.String() + "*"
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		s.log.DebugWithContext(ctx, "booking cache invalidation failed", map[string]interface{}{
			"pattern": pattern,
			"error":   err.Error(),
		})
	}
}

// generateBookingReference produces references like EVB-20260831-QWJZKA.
func generateBookingReference() (string, error) {
	timestamp := time.Now().Format("20060102")

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)
	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("EVB-%s-%s", timestamp, string(randomPart)), nil
}
