package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentStatus is the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentPending   InvestmentStatus = "pending"
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCancelled InvestmentStatus = "cancelled"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentPaused    InvestmentStatus = "paused"
)

// Investment is a pledge of capital by a user into a project.
//
// Amount is invalid (Valid == false) when the stored value is missing or not a
// finite number; the approval flow rejects such records.
type Investment struct {
	InvestmentID       string              `json:"investmentID"`
	UserID             string              `json:"userID"`
	ProjectID          string              `json:"projectID"`
	Amount             decimal.NullDecimal `json:"amount"`
	Status             InvestmentStatus    `json:"status"`
	ExpectedReturn     decimal.NullDecimal `json:"expectedReturn"`
	RealizedReturn     decimal.NullDecimal `json:"realizedReturn"`
	CurrencyCode       string              `json:"currencyCode,omitempty"`
	TransactionID      *string             `json:"transactionID,omitempty"`
	ApprovedAt         *time.Time          `json:"approvedAt,omitempty"`
	ApprovedBy         *string             `json:"approvedBy,omitempty"`
	CancelledAt        *time.Time          `json:"cancelledAt,omitempty"`
	CancelledBy        *string             `json:"cancelledBy,omitempty"`
	CancellationReason *string             `json:"cancellationReason,omitempty"`
	AuditFields
}

// InvestmentApproval carries the fields written when an investment becomes active.
type InvestmentApproval struct {
	InvestmentID  string
	ApprovedBy    string
	ApprovedAt    time.Time
	TransactionID string
}

// InvestmentCancellation carries the fields written when an investment is rejected.
type InvestmentCancellation struct {
	InvestmentID  string
	CancelledBy   string
	CancelledAt   time.Time
	Reason        string
	TransactionID string
}

// IsPending reports whether the investment still awaits a decision.
func (i Investment) IsPending() bool {
	return i.Status == InvestmentPending
}

// HasPositiveAmount reports whether Amount is a finite number greater than zero.
func (i Investment) HasPositiveAmount() bool {
	return i.Amount.Valid && i.Amount.Decimal.IsPositive()
}
