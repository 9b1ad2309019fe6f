package wallet

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventbuka/pkg/logger"
)

var ErrInvalidAmount = errors.New("amount must be positive")

type Service interface {
	Deposit(ctx context.Context, userID uuid.UUID, req DepositRequest) (*Transaction, error)
	Withdraw(ctx context.Context, userID uuid.UUID, req WithdrawRequest) (*Transaction, error)
	Balance(ctx context.Context, userID uuid.UUID) (*BalanceResponse, error)
	History(ctx context.Context, userID uuid.UUID, page, limit int) (*PaginatedTransactions, error)

	// DebitTx and CreditTx run inside the caller's transaction so the
	// wallet movement commits together with the booking or vote that
	// caused it.
	DebitTx(tx *gorm.DB, userID uuid.UUID, amount int64, txType TransactionType, description string, relatedID *uuid.UUID) (*Transaction, error)
	CreditTx(tx *gorm.DB, userID uuid.UUID, amount int64, txType TransactionType, description string, relatedID *uuid.UUID) (*Transaction, error)
}

type service struct {
	repo Repository
	db   *gorm.DB
	log  *logger.Logger
}

func NewService(repo Repository, db *gorm.DB, log *logger.Logger) Service {
	return &service{
		repo: repo,
		db:   db,
		log:  log,
	}
}

func (s *service) Deposit(ctx context.Context, userID uuid.UUID, req DepositRequest) (*Transaction, error) {
	var entry *Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		entry, txErr = s.CreditTx(tx, userID, req.Amount, TypeDeposit, req.Description, nil)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.log.LogWalletTransaction(ctx, entry.Reference, userID.String(), string(TypeDeposit), req.Amount)
	return entry, nil
}

// Withdraw moves money out of the wallet as a payout. The debit fails
// when the balance cannot cover the amount.
func (s *service) Withdraw(ctx context.Context, userID uuid.UUID, req WithdrawRequest) (*Transaction, error) {
	var entry *Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		entry, txErr = s.DebitTx(tx, userID, req.Amount, TypePayout, req.Description, nil)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.log.LogWalletTransaction(ctx, entry.Reference, userID.String(), string(TypePayout), req.Amount)
	return entry, nil
}

func (s *service) Balance(ctx context.Context, userID uuid.UUID) (*BalanceResponse, error) {
	balance, err := s.repo.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &BalanceResponse{
		UserID:  userID.String(),
		Balance: balance,
	}, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID, page, limit int) (*PaginatedTransactions, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	transactions, total, err := s.repo.History(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	return &PaginatedTransactions{
		Transactions: transactions,
		TotalCount:   total,
		Page:         page,
		Limit:        limit,
	}, nil
}

func (s *service) DebitTx(tx *gorm.DB, userID uuid.UUID, amount int64, txType TransactionType, description string, relatedID *uuid.UUID) (*Transaction, error) {
	entry, err := newEntry(userID, amount, txType, description, relatedID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Debit(tx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) CreditTx(tx *gorm.DB, userID uuid.UUID, amount int64, txType TransactionType, description string, relatedID *uuid.UUID) (*Transaction, error) {
	entry, err := newEntry(userID, amount, txType, description, relatedID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Credit(tx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func newEntry(userID uuid.UUID, amount int64, txType TransactionType, description string, relatedID *uuid.UUID) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	reference, err := generateTransactionReference()
	if err != nil {
		return nil, err
	}

	return &Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Reference:   reference,
		Description: description,
		RelatedID:   relatedID,
	}, nil
}

// generateTransactionReference produces references like
// TXN-20260831-QWJZKA.
func generateTransactionReference() (string, error) {
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

	return fmt.Sprintf("TXN-%s-%s", timestamp, string(randomPart)), nil
}
