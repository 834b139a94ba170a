package service

import (
	"context"
	"database/sql"
	"demo-bank-api/logger"
	"demo-bank-api/model"
	"demo-bank-api/repository"
	"errors"
	"fmt"
	"strings"
)

// AuthService implements the demo login flows. Both flows resolve to the single demo account;
// credentials and face captures are accepted without inspection.
type AuthService struct {
	accountRepo       repository.IAccountRepository
	tokens            *TokenService
	demoAccountNumber string
}

func NewAuthService(accountRepo repository.IAccountRepository, tokens *TokenService, demoAccountNumber string) *AuthService {
	return &AuthService{
		accountRepo:       accountRepo,
		tokens:            tokens,
		demoAccountNumber: demoAccountNumber,
	}
}

// Login issues a token for the demo account.
func (s *AuthService) Login(ctx context.Context) (*model.Account, string, error) {
	account, err := s.demoAccount(ctx)
	if err != nil {
		return nil, "", err
	}
	return s.issue(account)
}

// VerifyFace issues a token for the demo account once any face capture is supplied.
func (s *AuthService) VerifyFace(ctx context.Context, capturedFace string) (*model.Account, string, error) {
	account, err := s.demoAccount(ctx)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(capturedFace) == "" {
		return nil, "", ErrNoFaceData
	}
	logger.Log.WithField("account_number", account.AccountNumber).Info("Face capture accepted")
	return s.issue(account)
}

func (s *AuthService) demoAccount(ctx context.Context) (*model.Account, error) {
	account, err := s.accountRepo.GetByAccountNumber(ctx, s.demoAccountNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDemoUserNotFound
		}
		return nil, fmt.Errorf("could not load demo account: %w", err)
	}
	return account, nil
}

func (s *AuthService) issue(account *model.Account) (*model.Account, string, error) {
	token, err := s.tokens.Issue(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}
