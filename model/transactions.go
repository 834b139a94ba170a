package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the type of balance-affecting event a transaction records.
type Kind string

const (
	KindTransfer   Kind = "transfer"
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

func (k Kind) Valid() bool {
	switch k {
	case KindTransfer, KindDeposit, KindWithdrawal:
		return true
	}
	return false
}

// ParseKind converts a stored value into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown transaction kind %q", s)
	}
	return k, nil
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusPending Status = "pending"
	StatusFailed  Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusPending, StatusFailed:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown transaction status %q", s)
	}
	return st, nil
}

// Transaction is an append-only log entry. UserID is the account whose balance was debited.
type Transaction struct {
	ID          uuid.UUID       `json:"_id"`
	UserID      uuid.UUID       `json:"userId"`
	FromAccount string          `json:"fromAccount"`
	ToAccount   string          `json:"toAccount"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        Kind            `json:"type"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// HistoryEntry is the shape of one row in the history response.
type HistoryEntry struct {
	ID        uuid.UUID       `json:"_id"`
	Kind      Kind            `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Recipient string          `json:"recipient"`
	Timestamp time.Time       `json:"timestamp"`
	Status    Status          `json:"status"`
}

func (t *Transaction) HistoryEntry() HistoryEntry {
	return HistoryEntry{
		ID:        t.ID,
		Kind:      t.Kind,
		Amount:    t.Amount,
		Recipient: t.ToAccount,
		Timestamp: t.CreatedAt,
		Status:    t.Status,
	}
}
