// file: service/account_service.go

package service

import (
	"context"
	"database/sql"
	"demo-bank-api/logger"
	"demo-bank-api/model"
	"demo-bank-api/repository"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const profileCacheTTL = 5 * time.Minute

// AccountService serves profiles with a cache-aside strategy and provisions the demo account.
type AccountService struct {
	repo  repository.IAccountRepository
	cache ICacheClient
}

// NewAccountService builds the service. A nil cache disables caching.
func NewAccountService(repo repository.IAccountRepository, cache ICacheClient) *AccountService {
	return &AccountService{
		repo:  repo,
		cache: cache,
	}
}

func profileCacheKey(accountNumber string) string {
	return fmt.Sprintf("profile:%s", accountNumber)
}

// GetProfile returns the public profile for accountNumber.
func (s *AccountService) GetProfile(ctx context.Context, accountNumber string) (*model.Profile, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	cacheKey := profileCacheKey(accountNumber)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var profile model.Profile
			if err := json.Unmarshal([]byte(cached), &profile); err == nil {
				return &profile, nil
			}
			log.Warn("Discarding undecodable cached profile")
		case !errors.Is(err, redis.Nil):
			log.WithError(err).Warn("Profile cache read failed, falling back to database")
		}
	}

	account, err := s.repo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("could not load account: %w", err)
	}
	profile := account.Profile()

	if s.cache != nil {
		if data, err := json.Marshal(profile); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, profileCacheTTL).Err(); err != nil {
				log.WithError(err).Warn("Profile cache write failed")
			}
		}
	}

	return &profile, nil
}

// InvalidateProfile removes the cached profile so the next read sees the stored balance.
func (s *AccountService) InvalidateProfile(ctx context.Context, accountNumber string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, profileCacheKey(accountNumber)).Err(); err != nil {
		logger.Log.WithError(err).WithField("account_number", accountNumber).Warn("Profile cache invalidation failed")
	}
}

// ProvisionDemoAccount makes sure the demo account exists. An existing account is left untouched.
func (s *AccountService) ProvisionDemoAccount(ctx context.Context, accountNumber string) (*model.Account, error) {
	account := model.NewDemoAccount(accountNumber)
	created, err := s.repo.CreateIfNotExists(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("could not provision demo account: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"account_number": account.AccountNumber,
		"created":        created,
		"balance":        account.Balance.String(),
	}).Info("Demo account provisioned")
	return account, nil
}
