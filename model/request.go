// file: model/request.go

package model

import "github.com/shopspring/decimal"

// TransferRequest is the payload for a funds transfer. An amount of zero counts as missing.
type TransferRequest struct {
	FromAccountNumber string          `json:"fromAccountNumber" validate:"required"`
	ToAccountNumber   string          `json:"toAccountNumber" validate:"required"`
	Amount            decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// FaceVerifyRequest carries the captured face image. Its content is never inspected.
type FaceVerifyRequest struct {
	CapturedFace string `json:"capturedFace"`
}

// MoneyScale is the number of decimal places balances and amounts are stored with.
const MoneyScale = 2

// HasCentPrecision reports whether d fits the stored money scale without rounding.
func HasCentPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
