package service

import (
	"context"
	"database/sql"
	"demo-bank-api/events"
	"demo-bank-api/logger"
	"demo-bank-api/model"
	"demo-bank-api/repository"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransactionService struct {
	db              *sql.DB
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
	profiles        ProfileInvalidator
	publisher       events.Publisher
}

func NewTransactionService(
	db *sql.DB,
	accountRepo repository.IAccountRepository,
	transactionRepo repository.ITransactionRepository,
	profiles ProfileInvalidator,
	publisher events.Publisher,
) *TransactionService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &TransactionService{
		db:              db,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		profiles:        profiles,
		publisher:       publisher,
	}
}

// TransferResult is what a committed transfer produced.
type TransferResult struct {
	Transaction *model.Transaction
	NewBalance  decimal.Decimal
}

// Transfer debits the source account and logs the transfer in one database transaction.
// The destination is recorded as given and never credited.
func (s *TransactionService) Transfer(ctx context.Context, req model.TransferRequest) (*TransferResult, error) {
	if strings.TrimSpace(req.FromAccountNumber) == "" || strings.TrimSpace(req.ToAccountNumber) == "" || req.Amount.IsZero() {
		return nil, ErrMissingFields
	}
	if req.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if !model.HasCentPrecision(req.Amount) {
		return nil, ErrAmountPrecision
	}

	log := logger.Log.WithFields(logrus.Fields{
		"from_account": req.FromAccountNumber,
		"to_account":   req.ToAccountNumber,
		"amount":       req.Amount.String(),
	})
	log.Info("Starting money transfer process")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	fromAccount, err := s.accountRepo.GetByAccountNumberForUpdate(ctx, tx, req.FromAccountNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSourceAccountNotFound
		}
		return nil, fmt.Errorf("could not load sender account: %w", err)
	}

	if fromAccount.Balance.LessThan(req.Amount) {
		log.WithField("balance", fromAccount.Balance.String()).Info("Transfer rejected for insufficient balance")
		return nil, ErrInsufficientFunds
	}

	newBalance, err := s.accountRepo.DebitBalance(ctx, tx, fromAccount.ID, req.Amount)
	if err != nil {
		if errors.Is(err, repository.ErrBalanceTooLow) {
			return nil, ErrInsufficientFunds
		}
		return nil, fmt.Errorf("could not update sender balance: %w", err)
	}

	transaction := &model.Transaction{
		UserID:      fromAccount.ID,
		FromAccount: req.FromAccountNumber,
		ToAccount:   req.ToAccountNumber,
		Amount:      req.Amount,
		Kind:        model.KindTransfer,
		Status:      model.StatusSuccess,
	}
	if err := s.transactionRepo.CreateTransaction(ctx, tx, transaction); err != nil {
		return nil, fmt.Errorf("could not create transaction record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	if s.profiles != nil {
		s.profiles.InvalidateProfile(ctx, req.FromAccountNumber)
	}
	event := events.TransferEvent{
		TransactionID: transaction.ID,
		FromAccount:   transaction.FromAccount,
		ToAccount:     transaction.ToAccount,
		Amount:        transaction.Amount,
		NewBalance:    newBalance,
		Timestamp:     transaction.CreatedAt,
	}
	if err := s.publisher.PublishTransferCompleted(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish transfer event")
	}

	log.WithField("new_balance", newBalance.String()).Info("Transaction completed successfully")
	return &TransferResult{Transaction: transaction, NewBalance: newBalance}, nil
}

// History returns the transfers debited from accountNumber, newest first.
func (s *TransactionService) History(ctx context.Context, accountNumber string) ([]model.HistoryEntry, error) {
	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("could not load account: %w", err)
	}

	transactions, err := s.transactionRepo.GetTransactionsByUserID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("could not load transactions: %w", err)
	}

	history := make([]model.HistoryEntry, 0, len(transactions))
	for _, t := range transactions {
		history = append(history, t.HistoryEntry())
	}
	return history, nil
}
