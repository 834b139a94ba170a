package repository

import (
	"context"
	"database/sql"
	"demo-bank-api/logger"
	"demo-bank-api/model"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrBalanceTooLow is returned by DebitBalance when the stored balance cannot cover the debit.
var ErrBalanceTooLow = errors.New("balance lower than debit amount")

// IAccountRepository defines the contract for account database operations.
type IAccountRepository interface {
	GetByAccountNumber(ctx context.Context, accountNumber string) (*model.Account, error)
	GetByAccountNumberForUpdate(ctx context.Context, tx *sql.Tx, accountNumber string) (*model.Account, error)
	DebitBalance(ctx context.Context, tx *sql.Tx, accountID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	CreateIfNotExists(ctx context.Context, account *model.Account) (bool, error)
}

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

const accountColumns = `id, account_number, full_name, email, phone, face_data, balance, created_at`

func scanAccount(row *sql.Row) (*model.Account, error) {
	acc := &model.Account{}
	err := row.Scan(&acc.ID, &acc.AccountNumber, &acc.FullName, &acc.Email, &acc.Phone, &acc.FaceData, &acc.Balance, &acc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// GetByAccountNumber returns sql.ErrNoRows when no account carries the number.
func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Info("Executing query to get account by number")

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1`
	acc, err := scanAccount(r.DB.QueryRowContext(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("Account not found")
		} else {
			log.WithError(err).Error("Failed to execute get account by number query")
		}
		return nil, err
	}
	return acc, nil
}

// GetByAccountNumberForUpdate locks the account row for the rest of tx.
func (r *AccountRepository) GetByAccountNumberForUpdate(ctx context.Context, tx *sql.Tx, accountNumber string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Info("Executing query to get account for update")

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1 FOR UPDATE`
	acc, err := scanAccount(tx.QueryRowContext(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account for update query")
		}
		return nil, err
	}
	return acc, nil
}

// DebitBalance subtracts amount only if the balance covers it and returns the new balance.
func (r *AccountRepository) DebitBalance(ctx context.Context, tx *sql.Tx, accountID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"amount":     amount.String(),
	})
	log.Info("Executing conditional debit of account balance")

	query := `UPDATE accounts SET balance = balance - $1 WHERE id = $2 AND balance >= $1 RETURNING balance`
	var newBalance decimal.Decimal
	err := tx.QueryRowContext(ctx, query, amount, accountID).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("Conditional debit matched no row")
			return decimal.Zero, ErrBalanceTooLow
		}
		log.WithError(err).Error("Failed to execute debit query")
		return decimal.Zero, err
	}
	return newBalance, nil
}

// CreateIfNotExists inserts the account unless its number is already taken.
// It reports whether a row was inserted and fills the stored values into account.
func (r *AccountRepository) CreateIfNotExists(ctx context.Context, account *model.Account) (bool, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":     account.ID,
		"account_number": account.AccountNumber,
	})
	log.Info("Executing query to create account if absent")

	query := `INSERT INTO accounts (id, account_number, full_name, email, phone, balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_number) DO NOTHING`
	res, err := r.DB.ExecContext(ctx, query, account.ID, account.AccountNumber, account.FullName, account.Email, account.Phone, account.Balance)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	stored, err := r.GetByAccountNumber(ctx, account.AccountNumber)
	if err != nil {
		return false, err
	}
	*account = *stored
	return inserted > 0, nil
}
