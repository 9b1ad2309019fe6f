package wallet

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventbuka/internal/users"
)

var ErrInsufficientFunds = errors.New("insufficient wallet balance")

type Repository interface {
	// Credit adds funds inside tx and records the ledger entry.
	Credit(tx *gorm.DB, entry *Transaction) error

	// Debit removes funds inside tx, failing with ErrInsufficientFunds
	// when the balance cannot cover the amount.
	Debit(tx *gorm.DB, entry *Transaction) error

	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
	History(ctx context.Context, userID uuid.UUID, page, limit int) ([]Transaction, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Credit(tx *gorm.DB, entry *Transaction) error {
	result := tx.Model(&users.User{}).
		Where("id = ?", entry.UserID).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", entry.Amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.fillBalanceAfter(tx, entry); err != nil {
		return err
	}
	return tx.Create(entry).Error
}

func (r *repository) Debit(tx *gorm.DB, entry *Transaction) error {
	// The balance guard lives in the WHERE clause so two concurrent
	// debits can never drive the balance negative.
	result := tx.Model(&users.User{}).
		Where("id = ? AND wallet_balance >= ?", entry.UserID, entry.Amount).
		Update("wallet_balance", gorm.Expr("wallet_balance - ?", entry.Amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientFunds
	}

	if err := r.fillBalanceAfter(tx, entry); err != nil {
		return err
	}
	return tx.Create(entry).Error
}

func (r *repository) fillBalanceAfter(tx *gorm.DB, entry *Transaction) error {
	var user users.User
	if err := tx.Select("wallet_balance").Where("id = ?", entry.UserID).First(&user).Error; err != nil {
		return err
	}
	entry.BalanceAfter = user.WalletBalance
	return nil
}

func (r *repository) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	var user users.User
	err := r.db.WithContext(ctx).Select("wallet_balance").Where("id = ?", userID).First(&user).Error
	if err != nil {
		return 0, err
	}
	return user.WalletBalance, nil
}

func (r *repository) History(ctx context.Context, userID uuid.UUID, page, limit int) ([]Transaction, int64, error) {
	db := r.db.WithContext(ctx).Model(&Transaction{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []Transaction
	err := db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}
