package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the append-only transactions table.
type Transaction struct {
	TransactionID   string
	UserID          string
	ProjectID       *string
	InvestmentID    *string
	Amount          decimal.Decimal
	CurrencyCode    string
	Type            string
	Status          string
	Description     string
	Reference       string
	CreatedAt       time.Time
	ApprovedAt      *time.Time
	ApprovedBy      *string
	RejectedAt      *time.Time
	RejectedBy      *string
	RejectionReason *string
}
