package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Account struct {
	ID            uuid.UUID       `json:"_id"`
	FullName      string          `json:"fullName"`
	AccountNumber string          `json:"accountNumber"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	FaceData      string          `json:"-"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Profile is the public view of an account returned by login and profile lookups.
type Profile struct {
	ID            uuid.UUID       `json:"_id"`
	FullName      string          `json:"fullName"`
	AccountNumber string          `json:"accountNumber"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Balance       decimal.Decimal `json:"balance"`
}

func (a *Account) Profile() Profile {
	return Profile{
		ID:            a.ID,
		FullName:      a.FullName,
		AccountNumber: a.AccountNumber,
		Email:         a.Email,
		Phone:         a.Phone,
		Balance:       a.Balance,
	}
}

// DemoOpeningBalance is the balance a freshly provisioned demo account starts with.
var DemoOpeningBalance = decimal.NewFromInt(50000)

// NewDemoAccount builds the fixed demo account for the given account number.
func NewDemoAccount(accountNumber string) *Account {
	return &Account{
		ID:            uuid.New(),
		FullName:      "Demo User",
		AccountNumber: accountNumber,
		Email:         "demo@banking.com",
		Phone:         "+91 9876543210",
		Balance:       DemoOpeningBalance,
	}
}
