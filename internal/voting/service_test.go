package voting

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventbuka/internal/events"
	"eventbuka/internal/wallet"
	"eventbuka/pkg/cache"
	"eventbuka/pkg/logger"
)

func passthroughTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type voteKey struct {
	userID     uuid.UUID
	categoryID uuid.UUID
}

type fakeRepo struct {
	categories map[uuid.UUID]*NominationCategory
	nominees   map[uuid.UUID]*Nominee
	votes      map[voteKey]*Vote
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		categories: make(map[uuid.UUID]*NominationCategory),
		nominees:   make(map[uuid.UUID]*Nominee),
		votes:      make(map[voteKey]*Vote),
	}
}

func (f *fakeRepo) CreateCategory(category *NominationCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeRepo) GetCategory(_ context.Context, id uuid.UUID) (*NominationCategory, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeRepo) ListCategoriesByEvent(_ context.Context, eventID uuid.UUID) ([]NominationCategory, error) {
	var out []NominationCategory
	for _, category := range f.categories {
		if category.EventID == eventID {
			out = append(out, *category)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateNominee(nominee *Nominee) error {
	if nominee.ID == uuid.Nil {
		nominee.ID = uuid.New()
	}
	nominee.CreatedAt = time.Now()
	f.nominees[nominee.ID] = nominee
	return nil
}

func (f *fakeRepo) GetNominee(_ context.Context, id uuid.UUID) (*Nominee, error) {
	nominee, ok := f.nominees[id]
	if !ok {
		return nil, ErrNomineeNotFound
	}
	return nominee, nil
}

func (f *fakeRepo) ListApprovedNominees(_ context.Context, categoryID uuid.UUID) ([]Nominee, error) {
	var out []Nominee
	for _, nominee := range f.nominees {
		if nominee.CategoryID == categoryID && nominee.IsApproved {
			out = append(out, *nominee)
		}
	}
	// highest vote count first, matching the query ordering
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if out[j].VoteCount > out[i].VoteCount {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) ApproveNominee(_ context.Context, id uuid.UUID) error {
	nominee, ok := f.nominees[id]
	if !ok {
		return ErrNomineeNotFound
	}
	nominee.IsApproved = true
	return nil
}

func (f *fakeRepo) InsertVote(_ *gorm.DB, vote *Vote) error {
	key := voteKey{userID: vote.UserID, categoryID: vote.CategoryID}
	if _, exists := f.votes[key]; exists {
		return ErrAlreadyVoted
	}
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	f.votes[key] = vote
	return nil
}

func (f *fakeRepo) BumpVoteCount(_ *gorm.DB, nomineeID uuid.UUID) error {
	nominee, ok := f.nominees[nomineeID]
	if !ok {
		return ErrNomineeNotFound
	}
	nominee.VoteCount++
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
	return &wallet.Transaction{Amount: amount}, nil
}

func (f *fakeWalletService) CreditTx(_ *gorm.DB, userID uuid.UUID, amount int64, _ wallet.TransactionType, _ string, _ *uuid.UUID) (*wallet.Transaction, error) {
	f.balances[userID] += amount
	return &wallet.Transaction{Amount: amount}, nil
}

type recordingNotifier struct {
	receipts []string
}

func (r *recordingNotifier) VoteCast(_ context.Context, _ uuid.UUID, _ string, nomineeName string, _ int64) {
	r.receipts = append(r.receipts, nomineeName)
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
	svc         Service
	repo        *fakeRepo
	walletSvc   *fakeWalletService
	notifier    *recordingNotifier
	eventID     uuid.UUID
	organizerID uuid.UUID
	voterID     uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	eventID := uuid.New()
	organizerID := uuid.New()
	voterID := uuid.New()

	reader := &fakeEventReader{events: map[uuid.UUID]*events.EventResponse{
		eventID: {
			ID:           eventID.String(),
			Title:        "Naija Music Awards",
			OrganizerID:  organizerID.String(),
			Status:       events.StatusPublished,
			IsAwardEvent: true,
		},
	}}

	repo := newFakeRepo()
	walletSvc := &fakeWalletService{balances: map[uuid.UUID]int64{voterID: 5000}}
	notifier := &recordingNotifier{}

	svc := NewService(repo, passthroughTx, reader, walletSvc, notifier, noopCache{}, logger.New())

	return &fixture{
		svc:         svc,
		repo:        repo,
		walletSvc:   walletSvc,
		notifier:    notifier,
		eventID:     eventID,
		organizerID: organizerID,
		voterID:     voterID,
	}
}

func (f *fixture) openCategory(t *testing.T, isPaid bool, price int64) *NominationCategory {
	t.Helper()
	category, err := f.svc.CreateCategory(context.Background(), f.organizerID, false, f.eventID, CreateCategoryRequest{
		Name:           "Artist of the Year",
		IsPaid:         isPaid,
		VotePrice:      price,
		VotingStartsAt: time.Now().Add(-time.Hour),
		VotingEndsAt:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return category
}

func (f *fixture) approvedNominee(t *testing.T, categoryID uuid.UUID, name string) *Nominee {
	t.Helper()
	nominee, err := f.svc.CreateNominee(context.Background(), f.organizerID, false, categoryID, CreateNomineeRequest{
		Name: name,
	})
	require.NoError(t, err)
	require.True(t, nominee.IsApproved)
	return nominee
}

func TestCreateCategoryRequiresAwardEvent(t *testing.T) {
	f := newFixture(t)
	plainID := uuid.New()
	reader := &fakeEventReader{events: map[uuid.UUID]*events.EventResponse{
		plainID: {ID: plainID.String(), OrganizerID: f.organizerID.String(), IsAwardEvent: false},
	}}
	svc := NewService(f.repo, passthroughTx, reader, f.walletSvc, f.notifier, noopCache{}, logger.New())

	_, err := svc.CreateCategory(context.Background(), f.organizerID, false, plainID, CreateCategoryRequest{
		Name:           "Best Newcomer",
		VotingStartsAt: time.Now(),
		VotingEndsAt:   time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrNotAwardEvent)
}

func TestCreateCategoryRejectsForeignOrganizer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateCategory(context.Background(), uuid.New(), false, f.eventID, CreateCategoryRequest{
		Name:           "Best Newcomer",
		VotingStartsAt: time.Now(),
		VotingEndsAt:   time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrNotEventOwner)
}

func TestCreateCategoryRejectsInvertedWindow(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateCategory(context.Background(), f.organizerID, false, f.eventID, CreateCategoryRequest{
		Name:           "Best Newcomer",
		VotingStartsAt: time.Now().Add(time.Hour),
		VotingEndsAt:   time.Now(),
	})
	assert.ErrorIs(t, err, ErrWindowInverted)
}

func TestFreeCategoryIgnoresPrice(t *testing.T) {
	f := newFixture(t)

	category, err := f.svc.CreateCategory(context.Background(), f.organizerID, false, f.eventID, CreateCategoryRequest{
		Name:           "People's Choice",
		IsPaid:         false,
		VotePrice:      9999,
		VotingStartsAt: time.Now(),
		VotingEndsAt:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), category.VotePrice)
}

func TestOrganizerNomineeIsAutoApproved(t *testing.T) {
	f := newFixture(t)
	category := f.openCategory(t, false, 0)

	nominee := f.approvedNominee(t, category.ID, "Burna Boy")
	assert.True(t, nominee.IsApproved)
}

func TestPublicNominationNeedsApproval(t *testing.T) {
	f := newFixture(t)
	category := f.openCategory(t, false, 0)

	nominee, err := f.svc.CreateNominee(context.Background(), f.voterID, false, category.ID, CreateNomineeRequest{
		Name: "Wizkid",
	})
	require.NoError(t, err)
	assert.False(t, nominee.IsApproved)

	nominees, err := f.svc.ListNominees(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Empty(t, nominees)

	require.NoError(t, f.svc.ApproveNominee(context.Background(), nominee.ID))

	nominees, err = f.svc.ListNominees(context.Background(), category.ID)
	require.NoError(t, err)
	require.Len(t, nominees, 1)
	assert.Equal(t, "Wizkid", nominees[0].Name)
}

func TestCastFreeVoteBumpsCount(t *testing.T) {
	f := newFixture(t)
	category := f.openCategory(t, false, 0)
	nominee := f.approvedNominee(t, category.ID, "Burna Boy")

	receipt, err := f.svc.CastVote(context.Background(), f.voterID, category.ID, CastVoteRequest{NomineeID: nominee.ID})
	require.NoError(t, err)

	assert.Equal(t, int64(0), receipt.AmountPaid)
	assert.Equal(t, int64(1), f.repo.nominees[nominee.ID].VoteCount)
	assert.Equal(t, int64(5000), f.walletSvc.balances[f.voterID])
	assert.Equal(t, []string{"Burna Boy"}, f.notifier.receipts)
}

func TestCastPaidVoteDebitsWallet(t *testing.T) {
	f := newFixture(t)
	category := f.openCategory(t, true, 500)
	nominee := f.approvedNominee(t, category.ID, "Tems")

	receipt, err := f.svc.CastVote(context.Background(), f.voterID, category.ID, CastVoteRequest{NomineeID: nominee.ID})
	require.NoError(t, err)

	assert.Equal(t, int64(500), receipt.AmountPaid)
	assert.Equal(t, int64(4500), f.walletSvc.balances[f.voterID])
}

func TestCastPaidVoteInsufficientFunds(t *testing.T) {
	f := newFixture(t)
	category := f.openCategory(t, true, 10000)
	nominee := f.approvedNominee(t, category.ID, "Tems")

	_, err := f.svc.CastVote(context.Background(), f.voterID, category.ID, CastVoteRequest{NomineeID: nominee.ID})
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
}

func TestSecondVoteInCategoryRejected(t *testing.T) {
	f := newFixture(t)
	category := f.openCategory(t, false, 0)
	first := f.approvedNominee(t, category.ID, "Burna Boy")
	second := f.approvedNominee(t, category.ID, "Wizkid")

	_, err := f.svc.CastVote(context.Background(), f.voterID, category.ID, CastVoteRequest{NomineeID: first.ID})
	require.NoError(t, err)

	_, err = f.svc.CastVote(context.Background(), f.voterID, category.ID, CastVoteRequest{NomineeID: second.ID})
	assert.ErrorIs(t, err, ErrAlreadyVoted)
	assert.Equal(t, int64(0), f.repo.nominees[second.ID].VoteCount)
}

func TestVoteOutsideWindowRejected(t *testing.T) {
	f := newFixture(t)

	category, err := f.svc.CreateCategory(context.Background(), f.organizerID, false, f.eventID, CreateCategoryRequest{
		Name:           "Closed Category",
		VotingStartsAt: time.Now().Add(-2 * time.Hour),
		VotingEndsAt:   time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	nominee := f.approvedNominee(t, category.ID, "Burna Boy")

	_, err = f.svc.CastVote(context.Background(), f.voterID, category.ID, CastVoteRequest{NomineeID: nominee.ID})
	assert.ErrorIs(t, err, ErrVotingClosed)
}

func TestVoteForUnapprovedNomineeRejected(t *testing.T) {
	f := newFixture(t)
	category := f.openCategory(t, false, 0)

	pending, err := f.svc.CreateNominee(context.Background(), f.voterID, false, category.ID, CreateNomineeRequest{
		Name: "Unknown Act",
	})
	require.NoError(t, err)

	_, err = f.svc.CastVote(context.Background(), f.voterID, category.ID, CastVoteRequest{NomineeID: pending.ID})
	assert.ErrorIs(t, err, ErrNomineeNotListed)
}

func TestVoteForNomineeFromOtherCategoryRejected(t *testing.T) {
	f := newFixture(t)
	first := f.openCategory(t, false, 0)
	second := f.openCategory(t, false, 0)
	nominee := f.approvedNominee(t, second.ID, "Burna Boy")

	_, err := f.svc.CastVote(context.Background(), f.voterID, first.ID, CastVoteRequest{NomineeID: nominee.ID})
	assert.ErrorIs(t, err, ErrNomineeNotListed)
}

func TestNomineesOrderedByVoteCount(t *testing.T) {
	f := newFixture(t)
	category := f.openCategory(t, false, 0)
	leader := f.approvedNominee(t, category.ID, "Burna Boy")
	f.approvedNominee(t, category.ID, "Wizkid")

	f.repo.nominees[leader.ID].VoteCount = 10

	nominees, err := f.svc.ListNominees(context.Background(), category.ID)
	require.NoError(t, err)
	require.Len(t, nominees, 2)
	assert.Equal(t, "Burna Boy", nominees[0].Name)
	assert.Equal(t, int64(10), nominees[0].VoteCount)
}
