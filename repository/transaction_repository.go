package repository

import (
	"context"
	"database/sql"
	"demo-bank-api/logger"
	"demo-bank-api/model"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for transaction database operations.
type ITransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error
	GetTransactionsByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Transaction, error)
}

// TransactionRepository implements ITransactionRepository.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// CreateTransaction appends a record inside tx. An empty status defaults to success.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	if transaction.Status == "" {
		transaction.Status = model.StatusSuccess
	}
	if !transaction.Kind.Valid() || !transaction.Status.Valid() {
		return fmt.Errorf("invalid transaction kind %q or status %q", transaction.Kind, transaction.Status)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"transaction_id": transaction.ID,
		"from_account":   transaction.FromAccount,
		"to_account":     transaction.ToAccount,
		"amount":         transaction.Amount.String(),
		"type":           transaction.Kind,
	})
	log.Info("Executing query to create a new transaction")

	query := `INSERT INTO transactions (id, user_id, from_account, to_account, amount, type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	err := tx.QueryRowContext(ctx, query,
		transaction.ID, transaction.UserID, transaction.FromAccount, transaction.ToAccount,
		transaction.Amount, string(transaction.Kind), string(transaction.Status),
	).Scan(&transaction.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return err
	}
	return nil
}

// GetTransactionsByUserID returns the account's records, newest first. Records sharing a
// timestamp are ordered by id so the listing is stable.
func (r *TransactionRepository) GetTransactionsByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Transaction, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to get transactions by user ID")

	query := `
		SELECT id, user_id, from_account, to_account, amount, type, status, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for transactions by user ID")
		return nil, err
	}
	defer rows.Close()

	transactions := []*model.Transaction{}
	for rows.Next() {
		var (
			t            model.Transaction
			kind, status string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.FromAccount, &t.ToAccount, &t.Amount, &kind, &status, &t.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		if t.Kind, err = model.ParseKind(kind); err != nil {
			return nil, err
		}
		if t.Status, err = model.ParseStatus(status); err != nil {
			return nil, err
		}
		transactions = append(transactions, &t)
	}
	if err := rows.Err(); err != nil {
		log.WithError(err).Error("Failed while iterating transaction rows")
		return nil, err
	}

	return transactions, nil
}
