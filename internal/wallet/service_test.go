package wallet

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"eventbuka/pkg/logger"
)

type fakeRepo struct {
	balances map[uuid.UUID]int64
	entries  []Transaction
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{balances: make(map[uuid.UUID]int64)}
}

func (f *fakeRepo) Credit(_ *gorm.DB, entry *Transaction) error {
	f.balances[entry.UserID] += entry.Amount
	entry.BalanceAfter = f.balances[entry.UserID]
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeRepo) Debit(_ *gorm.DB, entry *Transaction) error {
	if f.balances[entry.UserID] < entry.Amount {
		return ErrInsufficientFunds
	}
	f.balances[entry.UserID] -= entry.Amount
	entry.BalanceAfter = f.balances[entry.UserID]
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeRepo) Balance(_ context.Context, userID uuid.UUID) (int64, error) {
	return f.balances[userID], nil
}

func (f *fakeRepo) History(_ context.Context, userID uuid.UUID, page, limit int) ([]Transaction, int64, error) {
	var out []Transaction
	for _, entry := range f.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, int64(len(out)), nil
}

func newTestService(repo Repository) Service {
	return NewService(repo, nil, logger.New())
}

func TestDebitInsufficientFunds(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	userID := uuid.New()
	repo.balances[userID] = 10000

	_, err := svc.DebitTx(nil, userID, 15000, TypePayment, "ticket purchase", nil)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(10000), repo.balances[userID])
}

func TestDebitAndCreditUpdateBalance(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	userID := uuid.New()
	repo.balances[userID] = 50000

	entry, err := svc.DebitTx(nil, userID, 30000, TypePayment, "seat booking", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), entry.BalanceAfter)

	refund, err := svc.CreditTx(nil, userID, 30000, TypeRefund, "booking cancelled", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), refund.BalanceAfter)
}

func TestDebitRejectsNonPositiveAmount(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.DebitTx(nil, uuid.New(), 0, TypePayment, "", nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.CreditTx(nil, uuid.New(), -500, TypeDeposit, "", nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestTransactionReferenceFormat(t *testing.T) {
	ref, err := generateTransactionReference()
	require.NoError(t, err)

	parts := strings.Split(ref, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "TXN", parts[0])
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 6)
}

func TestHistoryFiltersByUser(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	alice := uuid.New()
	bob := uuid.New()
	repo.balances[alice] = 100000
	repo.balances[bob] = 100000

	_, err := svc.DebitTx(nil, alice, 5000, TypeVote, "paid vote", nil)
	require.NoError(t, err)
	_, err = svc.DebitTx(nil, bob, 7000, TypePayment, "tickets", nil)
	require.NoError(t, err)

	history, err := svc.History(context.Background(), alice, 1, 20)
	require.NoError(t, err)
	require.Len(t, history.Transactions, 1)
	assert.Equal(t, TypeVote, history.Transactions[0].Type)
}
