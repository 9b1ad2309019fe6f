package wallet

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TypeDeposit TransactionType = "DEPOSIT"
	TypePayment TransactionType = "PAYMENT"
	TypePayout  TransactionType = "PAYOUT"
	TypeRefund  TransactionType = "REFUND"
	TypeVote    TransactionType = "VOTE"
)

// Transaction is one wallet ledger entry. Amount is always positive;
// the type says which direction the money moved. Amounts are whole
// naira.
type Transaction struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID       uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Type         TransactionType `json:"type" gorm:"type:varchar(20);not null"`
	Amount       int64           `json:"amount" gorm:"not null;check:amount > 0"`
	BalanceAfter int64           `json:"balance_after" gorm:"not null"`
	Reference    string          `json:"reference" gorm:"not null;size:40;uniqueIndex"`
	Description  string          `json:"description" gorm:"size:255"`
	RelatedID    *uuid.UUID      `json:"related_id,omitempty" gorm:"type:uuid"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (Transaction) TableName() string {
	return "wallet_transactions"
}

type DepositRequest struct {
	Amount      int64  `json:"amount" binding:"required,min=100"`
	Description string `json:"description" binding:"max=255"`
}

type WithdrawRequest struct {
	Amount      int64  `json:"amount" binding:"required,min=100"`
	Description string `json:"description" binding:"max=255"`
}

type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

type PaginatedTransactions struct {
	Transactions []Transaction `json:"transactions"`
	TotalCount   int64         `json:"total_count"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
}
