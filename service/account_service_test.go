// file: service/account_service_test.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"demo-bank-api/model"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_GetProfile_NoCache(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	accountService := NewAccountService(mockRepo, nil)
	acc := demoAccount(50000)

	mockRepo.On("GetByAccountNumber", mock.Anything, "DEMO0001").Return(acc, nil).Once()
	mockRepo.On("GetByAccountNumber", mock.Anything, "NOPE").Return(nil, sql.ErrNoRows).Once()

	profile, err := accountService.GetProfile(context.Background(), "DEMO0001")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, profile.ID)
	assert.True(t, profile.Balance.Equal(decimal.NewFromInt(50000)))

	_, err = accountService.GetProfile(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_GetProfile_CacheAside(t *testing.T) {
	acc := demoAccount(50000)
	cached, err := json.Marshal(acc.Profile())
	require.NoError(t, err)

	t.Run("hit skips the database", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		cache := new(mockCache)
		cache.On("Get", "profile:DEMO0001").Return(string(cached), nil).Once()

		profile, err := NewAccountService(mockRepo, cache).GetProfile(context.Background(), "DEMO0001")

		require.NoError(t, err)
		assert.Equal(t, "Demo User", profile.FullName)
		mockRepo.AssertNotCalled(t, "GetByAccountNumber", mock.Anything, mock.Anything)
		cache.AssertExpectations(t)
	})

	t.Run("miss loads and stores", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		cache := new(mockCache)
		cache.On("Get", "profile:DEMO0001").Return("", redis.Nil).Once()
		mockRepo.On("GetByAccountNumber", mock.Anything, "DEMO0001").Return(acc, nil).Once()
		cache.On("Set", "profile:DEMO0001", cached, profileCacheTTL).Return(nil).Once()

		profile, err := NewAccountService(mockRepo, cache).GetProfile(context.Background(), "DEMO0001")

		require.NoError(t, err)
		assert.Equal(t, acc.ID, profile.ID)
		mockRepo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache outage falls back to database", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		cache := new(mockCache)
		cache.On("Get", "profile:DEMO0001").Return("", errors.New("dial tcp: connection refused")).Once()
		mockRepo.On("GetByAccountNumber", mock.Anything, "DEMO0001").Return(acc, nil).Once()
		cache.On("Set", "profile:DEMO0001", mock.Anything, profileCacheTTL).Return(errors.New("dial tcp: connection refused")).Once()

		profile, err := NewAccountService(mockRepo, cache).GetProfile(context.Background(), "DEMO0001")

		require.NoError(t, err)
		assert.Equal(t, acc.ID, profile.ID)
		mockRepo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})
}

func TestAccountService_InvalidateProfile(t *testing.T) {
	cache := new(mockCache)
	cache.On("Del", []string{"profile:DEMO0001"}).Return(nil).Once()

	NewAccountService(new(MockAccountRepository), cache).InvalidateProfile(context.Background(), "DEMO0001")
	cache.AssertExpectations(t)

	// Without a cache this is a no-op.
	NewAccountService(new(MockAccountRepository), nil).InvalidateProfile(context.Background(), "DEMO0001")
}

func TestAccountService_ProvisionDemoAccount(t *testing.T) {
	t.Run("creates the demo account", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockRepo.On("CreateIfNotExists", mock.Anything, mock.MatchedBy(func(acc *model.Account) bool {
			return acc.AccountNumber == "DEMO0001" &&
				acc.FullName == "Demo User" &&
				acc.Email == "demo@banking.com" &&
				acc.Balance.Equal(decimal.NewFromInt(50000))
		})).Return(true, nil).Once()

		acc, err := NewAccountService(mockRepo, nil).ProvisionDemoAccount(context.Background(), "DEMO0001")

		require.NoError(t, err)
		assert.Equal(t, "DEMO0001", acc.AccountNumber)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		expectedError := errors.New("db error")
		mockRepo.On("CreateIfNotExists", mock.Anything, mock.Anything).Return(false, expectedError).Once()

		_, err := NewAccountService(mockRepo, nil).ProvisionDemoAccount(context.Background(), "DEMO0001")

		assert.ErrorIs(t, err, expectedError)
		mockRepo.AssertExpectations(t)
	})
}
