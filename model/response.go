// file: model/response.go

package model

import "github.com/shopspring/decimal"

type HealthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	User    Profile `json:"user"`
	Token   string  `json:"token"`
}

type ProfileResponse struct {
	Success bool    `json:"success"`
	User    Profile `json:"user"`
}

type TransferResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	NewBalance decimal.Decimal `json:"newBalance"`
}

type HistoryResponse struct {
	Success bool           `json:"success"`
	History []HistoryEntry `json:"history"`
}
