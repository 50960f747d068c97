package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a history record by the kind of money movement.
type TransactionType string

const (
	TransactionTypeInvestment TransactionType = "investment"
	TransactionTypeTopUp      TransactionType = "topup"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus is the outcome recorded on a history record.
type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionApproved TransactionStatus = "approved"
	TransactionRejected TransactionStatus = "rejected"
)

// Transaction is an immutable, append-only history record of a money movement outcome.
type Transaction struct {
	TransactionID   string            `json:"transactionID"`
	UserID          string            `json:"userID"`
	ProjectID       string            `json:"projectID"`
	InvestmentID    string            `json:"investmentID"`
	Amount          decimal.Decimal   `json:"amount"`
	CurrencyCode    string            `json:"currencyCode"`
	Type            TransactionType   `json:"type"`
	Status          TransactionStatus `json:"status"`
	Description     string            `json:"description"`
	Reference       string            `json:"reference"`
	CreatedAt       time.Time         `json:"createdAt"`
	ApprovedAt      *time.Time        `json:"approvedAt,omitempty"`
	ApprovedBy      *string           `json:"approvedBy,omitempty"`
	RejectedAt      *time.Time        `json:"rejectedAt,omitempty"`
	RejectedBy      *string           `json:"rejectedBy,omitempty"`
	RejectionReason *string           `json:"rejectionReason,omitempty"`
}

// Provenance is the metadata a new terminal history record inherits from an
// earlier record for the same investment.
type Provenance struct {
	CurrencyCode string
	Description  string
	Reference    string
	CreatedAt    time.Time
}
