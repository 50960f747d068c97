package dto

import (
	"time"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RejectInvestmentRequest is the body of a rejection call.
type RejectInvestmentRequest struct {
	Reason string `json:"reason" binding:"required,notblank,max=500"`
}

// DecisionResult describes the outcome of an approval or rejection.
type DecisionResult struct {
	InvestmentID string                  `json:"investmentID"`
	Status       domain.InvestmentStatus `json:"status"`
	// TransactionID is the history record created by this call; empty when
	// AlreadyProcessed is true.
	TransactionID string `json:"transactionID,omitempty"`
	// AlreadyProcessed is true when the investment was already in the target state
	// and the call performed no writes.
	AlreadyProcessed bool `json:"alreadyProcessed"`
}

// InvestmentResponse defines the data returned for an investment.
type InvestmentResponse struct {
	InvestmentID       string                  `json:"investmentID"`
	UserID             string                  `json:"userID"`
	ProjectID          string                  `json:"projectID"`
	Amount             *decimal.Decimal        `json:"amount"`
	Status             domain.InvestmentStatus `json:"status"`
	TransactionID      *string                 `json:"transactionID,omitempty"`
	ApprovedAt         *time.Time              `json:"approvedAt,omitempty"`
	ApprovedBy         *string                 `json:"approvedBy,omitempty"`
	CancelledAt        *time.Time              `json:"cancelledAt,omitempty"`
	CancelledBy        *string                 `json:"cancelledBy,omitempty"`
	CancellationReason *string                 `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time               `json:"createdAt"`
	UpdatedAt          time.Time               `json:"updatedAt"`
}

// ToInvestmentResponse converts a domain.Investment to InvestmentResponse DTO.
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	resp := InvestmentResponse{
		InvestmentID:       inv.InvestmentID,
		UserID:             inv.UserID,
		ProjectID:          inv.ProjectID,
		Status:             inv.Status,
		TransactionID:      inv.TransactionID,
		ApprovedAt:         inv.ApprovedAt,
		ApprovedBy:         inv.ApprovedBy,
		CancelledAt:        inv.CancelledAt,
		CancelledBy:        inv.CancelledBy,
		CancellationReason: inv.CancellationReason,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.LastUpdatedAt,
	}
	if inv.Amount.Valid {
		amount := inv.Amount.Decimal
		resp.Amount = &amount
	}
	return resp
}

// ListTransactionsParams defines query parameters for listing history records.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of history records.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    *string              `json:"nextToken,omitempty"`
}
