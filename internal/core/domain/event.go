package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentEventType names a published investment lifecycle event.
type InvestmentEventType string

const (
	EventInvestmentApproved InvestmentEventType = "investment.approved"
	EventInvestmentRejected InvestmentEventType = "investment.rejected"
)

// InvestmentEvent is published after an approval or rejection commits.
type InvestmentEvent struct {
	Type          InvestmentEventType `json:"type"`
	InvestmentID  string              `json:"investmentID"`
	UserID        string              `json:"userID"`
	ProjectID     string              `json:"projectID"`
	TransactionID string              `json:"transactionID"`
	Amount        decimal.Decimal     `json:"amount"`
	CurrencyCode  string              `json:"currencyCode"`
	ActorID       string              `json:"actorID"`
	Reason        string              `json:"reason,omitempty"`
	OccurredAt    time.Time           `json:"occurredAt"`
}
