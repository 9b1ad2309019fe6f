package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventbuka/internal/events"
	"eventbuka/internal/seats"
	"eventbuka/internal/tickets"
	"eventbuka/internal/wallet"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

// passthrough transaction runner for tests
func fakeTxRunner(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*Booking
	seatRows map[string]uuid.UUID // (event, label) row, mirrors unique_booked_seat_per_event
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*Booking),
		seatRows: make(map[string]uuid.UUID),
	}
}

var errDuplicateSeatRow = errors.New(`duplicate key value violates unique constraint "unique_booked_seat_per_event"`)

func seatRowKey(eventID uuid.UUID, label string) string {
	return eventID.String() + "|" + label
}

func (f *fakeBookingRepo) Create(_ *gorm.DB, booking *Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	for _, seat := range booking.Seats {
		if _, taken := f.seatRows[seatRowKey(seat.EventID, seat.SeatLabel)]; taken {
			return errDuplicateSeatRow
		}
	}
	for _, seat := range booking.Seats {
		f.seatRows[seatRowKey(seat.EventID, seat.SeatLabel)] = booking.ID
	}
	booking.CreatedAt = time.Now()
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) DeleteSeats(_ *gorm.DB, bookingID uuid.UUID) error {
	for key, owner := range f.seatRows {
		if owner == bookingID {
			delete(f.seatRows, key)
		}
	}
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*Booking, error) {
	for _, booking := range f.bookings {
		if booking.Reference == reference {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, userID uuid.UUID, page, limit int) ([]Booking, int64, error) {
	var out []Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			out = append(out, *booking)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ *gorm.DB, id uuid.UUID, from, to Status) error {
	booking, ok := f.bookings[id]
	if !ok || booking.Status != from {
		return ErrBookingNotFound
	}
	booking.Status = to
	return nil
}

func (f *fakeBookingRepo) SetCancelledAt(_ *gorm.DB, id uuid.UUID, at time.Time) error {
	f.bookings[id].CancelledAt = &at
	return nil
}

type fakeTicketRepo struct {
	types map[uuid.UUID]*tickets.TicketType
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{types: make(map[uuid.UUID]*tickets.TicketType)}
}

func (f *fakeTicketRepo) Create(tt *tickets.TicketType) error {
	if tt.ID == uuid.Nil {
		tt.ID = uuid.New()
	}
	f.types[tt.ID] = tt
	return nil
}

func (f *fakeTicketRepo) GetByID(id uuid.UUID) (*tickets.TicketType, error) {
	tt, ok := f.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *tt
	return &copied, nil
}

func (f *fakeTicketRepo) GetByEvent(eventID uuid.UUID) ([]tickets.TicketType, error) {
	var out []tickets.TicketType
	for _, tt := range f.types {
		if tt.EventID == eventID {
			out = append(out, *tt)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) Update(id uuid.UUID, updates map[string]interface{}) (*tickets.TicketType, error) {
	return f.GetByID(id)
}

func (f *fakeTicketRepo) Delete(id uuid.UUID) error {
	delete(f.types, id)
	return nil
}

func (f *fakeTicketRepo) Sell(_ *gorm.DB, id uuid.UUID, quantity int) error {
	tt := f.types[id]
	if tt.QuantitySold+quantity > tt.QuantityTotal {
		return tickets.ErrInsufficientInventory
	}
	tt.QuantitySold += quantity
	return nil
}

func (f *fakeTicketRepo) Restock(_ *gorm.DB, id uuid.UUID, quantity int) error {
	f.types[id].QuantitySold -= quantity
	return nil
}

type fakeSeatService struct {
	prices map[string]int64
	booked map[string]bool
}

func newFakeSeatService() *fakeSeatService {
	return &fakeSeatService{
		prices: map[string]int64{"VIP-A-1": 25000, "VIP-A-2": 25000, "TBL-1-A": 40000, "TBL-1-B": 40000},
		booked: make(map[string]bool),
	}
}

func (f *fakeSeatService) Generate(context.Context, uuid.UUID, seats.GenerateSeatsRequest) (*seats.SeatMapResponse, error) {
	return nil, nil
}

func (f *fakeSeatService) SeatMap(context.Context, uuid.UUID) (*seats.SeatMapResponse, error) {
	return nil, nil
}

func (f *fakeSeatService) Quote(_ context.Context, eventID uuid.UUID, labels []string) (*seats.QuoteResponse, error) {
	var total int64
	quoted := make(map[string]int64)
	for _, label := range labels {
		price, ok := f.prices[label]
		if !ok {
			return nil, seats.ErrUnknownSeat
		}
		if f.booked[label] {
			return nil, seats.ErrSeatsUnavailable
		}
		quoted[label] = price
		total += price
	}
	return &seats.QuoteResponse{
		EventID:    eventID.String(),
		SeatLabels: labels,
		SeatPrices: quoted,
		Total:      total,
	}, nil
}

func (f *fakeSeatService) MarkBooked(_ context.Context, _ *gorm.DB, _ uuid.UUID, labels []string) error {
	for _, label := range labels {
		if f.booked[label] {
			return seats.ErrSeatsUnavailable
		}
	}
	for _, label := range labels {
		f.booked[label] = true
	}
	return nil
}

func (f *fakeSeatService) Release(_ context.Context, _ *gorm.DB, _ uuid.UUID, labels []string) error {
	for _, label := range labels {
		f.booked[label] = false
	}
	return nil
}

type fakeEventReader struct {
	events map[uuid.UUID]*events.EventResponse
}

func (f *fakeEventReader) GetEvent(_ context.Context, id uuid.UUID) (*events.EventResponse, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, events.ErrEventNotFound
	}
	return event, nil
}

type fakeWalletService struct {
	balances map[uuid.UUID]int64
	debits   []int64
	credits  []int64
}

func newFakeWalletService() *fakeWalletService {
	return &fakeWalletService{balances: make(map[uuid.UUID]int64)}
}

func (f *fakeWalletService) Deposit(context.Context, uuid.UUID, wallet.DepositRequest) (*wallet.Transaction, error) {
	return nil, nil
}

func (f *fakeWalletService) Withdraw(context.Context, uuid.UUID, wallet.WithdrawRequest) (*wallet.Transaction, error) {
	return nil, nil
}

func (f *fakeWalletService) Balance(context.Context, uuid.UUID) (*wallet.BalanceResponse, error) {
	return nil, nil
}

func (f *fakeWalletService) History(context.Context, uuid.UUID, int, int) (*wallet.PaginatedTransactions, error) {
	return nil, nil
}

func (f *fakeWalletService) DebitTx(_ *gorm.DB, userID uuid.UUID, amount int64, _ wallet.TransactionType, _ string, _ *uuid.UUID) (*wallet.Transaction, error) {
	if f.balances[userID] < amount {
		return nil, wallet.ErrInsufficientFunds
	}
	f.balances[userID] -= amount
	f.debits = append(f.debits, amount)
	return &wallet.Transaction{Amount: amount}, nil
}

func (f *fakeWalletService) CreditTx(_ *gorm.DB, userID uuid.UUID, amount int64, _ wallet.TransactionType, _ string, _ *uuid.UUID) (*wallet.Transaction, error) {
	f.balances[userID] += amount
	f.credits = append(f.credits, amount)
	return &wallet.Transaction{Amount: amount}, nil
}

type fakeNotifier struct {
	confirmed []string
	cancelled []string
}

func (f *fakeNotifier) BookingConfirmed(_ context.Context, _ uuid.UUID, reference string, _ uuid.UUID, _ int64) {
	f.confirmed = append(f.confirmed, reference)
}

func (f *fakeNotifier) BookingCancelled(_ context.Context, _ uuid.UUID, reference string, _ uuid.UUID, _ int64) {
	f.cancelled = append(f.cancelled, reference)
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) error { return cache.ErrCacheMiss }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (noopCache) Delete(context.Context, string) error        { return nil }
func (noopCache) DeletePattern(context.Context, string) error { return nil }
func (noopCache) Exists(context.Context, string) bool         { return false }
func (noopCache) Ping(context.Context) error                  { return nil }

func (noopCache) GetOrSet(_ context.Context, _ string, _ time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	data, err := fetcher()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

type fixture struct {
	svc        Service
	repo       *fakeBookingRepo
	ticketRepo *fakeTicketRepo
	seatSvc    *fakeSeatService
	walletSvc  *fakeWalletService
	notifier   *fakeNotifier
	eventID    uuid.UUID
	userID     uuid.UUID
	ticketType *tickets.TicketType
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	eventID := uuid.New()
	userID := uuid.New()

	eventReader := &fakeEventReader{events: map[uuid.UUID]*events.EventResponse{
		eventID: {
			ID:         eventID.String(),
			Title:      "Lagos Tech Summit",
			Status:     events.StatusPublished,
			HasSeating: true,
			StartTime:  time.Now().Add(48 * time.Hour),
		},
	}}

	ticketRepo := newFakeTicketRepo()
	ticketType := &tickets.TicketType{
		EventID:       eventID,
		Name:          "Regular",
		Price:         15000,
		QuantityTotal: 100,
		QuantitySold:  95,
	}
	require.NoError(t, ticketRepo.Create(ticketType))

	repo := newFakeBookingRepo()
	seatSvc := newFakeSeatService()
	walletSvc := newFakeWalletService()
	walletSvc.balances[userID] = 200000
	notifier := &fakeNotifier{}

	svc := NewService(repo, fakeTxRunner, ticketRepo, seatSvc, eventReader, walletSvc, notifier, noopCache{}, logger.New())

	return &fixture{
		svc:        svc,
		repo:       repo,
		ticketRepo: ticketRepo,
		seatSvc:    seatSvc,
		walletSvc:  walletSvc,
		notifier:   notifier,
		eventID:    eventID,
		userID:     userID,
		ticketType: ticketType,
	}
}

func TestBookTicketsDebitsWalletAndSellsInventory(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     2,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, booking.Status)
	assert.Equal(t, 2, booking.Quantity)
	assert.Equal(t, int64(30000), booking.TotalAmount)
	assert.Equal(t, int64(170000), f.walletSvc.balances[f.userID])
	assert.Equal(t, 97, f.ticketRepo.types[f.ticketType.ID].QuantitySold)
	assert.Len(t, f.notifier.confirmed, 1)
}

func TestBookTicketsClampsQuantityToRemaining(t *testing.T) {
	f := newFixture(t)

	// 5 tickets remain; a request for 10 buys what is left.
	booking, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     10,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, booking.Quantity)
	assert.Equal(t, int64(75000), booking.TotalAmount)
	assert.Equal(t, 100, f.ticketRepo.types[f.ticketType.ID].QuantitySold)
}

func TestBookTicketsSoldOut(t *testing.T) {
	f := newFixture(t)
	f.ticketType.QuantitySold = 100

	_, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, ErrSoldOut)
}

func TestBookTicketsInsufficientFunds(t *testing.T) {
	f := newFixture(t)
	f.walletSvc.balances[f.userID] = 10000

	_, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     2,
	})
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
}

func TestBookTicketsWrongEvent(t *testing.T) {
	f := newFixture(t)

	otherType := &tickets.TicketType{EventID: uuid.New(), Name: "VIP", Price: 50000, QuantityTotal: 10}
	require.NoError(t, f.ticketRepo.Create(otherType))

	_, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: otherType.ID,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, ErrTicketMismatch)
}

func TestBookSeatsReservesAndPrices(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc.BookSeats(context.Background(), f.userID, SeatBookingRequest{
		EventID:    f.eventID,
		SeatLabels: []string{"VIP-A-1", "TBL-1-A"},
	})
	require.NoError(t, err)

	assert.Equal(t, KindSeat, booking.Kind)
	assert.Equal(t, int64(65000), booking.TotalAmount)
	assert.ElementsMatch(t, []string{"VIP-A-1", "TBL-1-A"}, booking.SeatLabels)
	assert.True(t, f.seatSvc.booked["VIP-A-1"])
	assert.True(t, f.seatSvc.booked["TBL-1-A"])
}

func TestBookSeatsRejectsTakenSeat(t *testing.T) {
	f := newFixture(t)
	f.seatSvc.booked["VIP-A-1"] = true

	_, err := f.svc.BookSeats(context.Background(), f.userID, SeatBookingRequest{
		EventID:    f.eventID,
		SeatLabels: []string{"VIP-A-1", "VIP-A-2"},
	})
	assert.ErrorIs(t, err, seats.ErrSeatsUnavailable)
	assert.False(t, f.seatSvc.booked["VIP-A-2"])
}

func TestCancelRestoresInventoryAndRefunds(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     3,
	})
	require.NoError(t, err)

	cancelled, err := f.svc.CancelBooking(context.Background(), f.userID, uuid.MustParse(booking.ID), false)
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, 95, f.ticketRepo.types[f.ticketType.ID].QuantitySold)
	assert.Equal(t, int64(200000), f.walletSvc.balances[f.userID])
	assert.Len(t, f.notifier.cancelled, 1)
}

func TestCancelSeatBookingReleasesSeats(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc.BookSeats(context.Background(), f.userID, SeatBookingRequest{
		EventID:    f.eventID,
		SeatLabels: []string{"TBL-1-A", "TBL-1-B"},
	})
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), f.userID, uuid.MustParse(booking.ID), false)
	require.NoError(t, err)

	assert.False(t, f.seatSvc.booked["TBL-1-A"])
	assert.False(t, f.seatSvc.booked["TBL-1-B"])
}

func TestCancelRejectsForeignBooking(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     1,
	})
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), uuid.New(), uuid.MustParse(booking.ID), false)
	assert.ErrorIs(t, err, ErrNotBookingOwner)
}

func TestCancelTwiceFails(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     1,
	})
	require.NoError(t, err)

	id := uuid.MustParse(booking.ID)
	_, err = f.svc.CancelBooking(context.Background(), f.userID, id, false)
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), f.userID, id, false)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestBookingReferenceFormat(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     1,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^EVB-\d{8}-[A-Z]{6}$`, booking.Reference)
}

func TestBookTicketsRejectsUnpublishedEvent(t *testing.T) {
	f := newFixture(t)
	draftID := uuid.New()
	reader := &fakeEventReader{events: map[uuid.UUID]*events.EventResponse{
		draftID: {ID: draftID.String(), Status: events.StatusDraft, StartTime: time.Now().Add(time.Hour)},
	}}
	svc := NewService(f.repo, fakeTxRunner, f.ticketRepo, f.seatSvc, reader, f.walletSvc, f.notifier, noopCache{}, logger.New())

	_, err := svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      draftID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, ErrEventNotBookable)
}

func TestBookTicketsWithExternalPaymentSkipsWallet(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     2,
		PaymentRef:   "PSK-8839201",
	})
	require.NoError(t, err)

	assert.Equal(t, "PSK-8839201", booking.PaymentRef)
	assert.Equal(t, int64(30000), booking.TotalAmount)
	assert.Equal(t, int64(200000), f.walletSvc.balances[f.userID])
	assert.Equal(t, 97, f.ticketRepo.types[f.ticketType.ID].QuantitySold)
}

func TestCancelExternallyPaidBookingSkipsWalletRefund(t *testing.T) {
	f := newFixture(t)

	booking, err := f.svc.BookTickets(context.Background(), f.userID, TicketBookingRequest{
		EventID:      f.eventID,
		TicketTypeID: f.ticketType.ID,
		Quantity:     2,
		PaymentRef:   "PSK-8839201",
	})
	require.NoError(t, err)

	cancelled, err := f.svc.CancelBooking(context.Background(), f.userID, uuid.MustParse(booking.ID), false)
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, 95, f.ticketRepo.types[f.ticketType.ID].QuantitySold)
	assert.Equal(t, int64(200000), f.walletSvc.balances[f.userID])
}

func TestCancelledSeatCanBeRebooked(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.BookSeats(context.Background(), f.userID, SeatBookingRequest{
		EventID:    f.eventID,
		SeatLabels: []string{"TBL-1-A"},
	})
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), f.userID, uuid.MustParse(first.ID), false)
	require.NoError(t, err)

	otherUser := uuid.New()
	f.walletSvc.balances[otherUser] = 100000

	second, err := f.svc.BookSeats(context.Background(), otherUser, SeatBookingRequest{
		EventID:    f.eventID,
		SeatLabels: []string{"TBL-1-A"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(40000), second.TotalAmount)
	assert.True(t, f.seatSvc.booked["TBL-1-A"])
	assert.Equal(t, uuid.MustParse(second.ID), f.repo.seatRows[seatRowKey(f.eventID, "TBL-1-A")])
}
