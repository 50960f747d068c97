package services

import (
	"context"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	"github.com/SscSPs/investment_admin_core/internal/dto"
)

// InvestmentDecisionSvc defines the two state transitions staff can apply to a
// pending investment.
type InvestmentDecisionSvc interface {
	// ApproveInvestment activates a pending investment, debiting the user's wallet
	// and crediting the project's invested capital atomically.
	ApproveInvestment(ctx context.Context, investmentID string, actor domain.Actor) (*dto.DecisionResult, error)

	// RejectInvestment cancels a pending investment without moving money.
	RejectInvestment(ctx context.Context, investmentID string, reason string, actor domain.Actor) (*dto.DecisionResult, error)
}

// InvestmentReaderSvc defines read operations backing the decision screens.
type InvestmentReaderSvc interface {
	// GetInvestment retrieves an investment by ID.
	GetInvestment(ctx context.Context, investmentID string) (*domain.Investment, error)

	// ListInvestmentTransactions retrieves the history records of an investment.
	ListInvestmentTransactions(ctx context.Context, investmentID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// InvestmentSvcFacade combines all investment-related service interfaces
type InvestmentSvcFacade interface {
	InvestmentDecisionSvc
	InvestmentReaderSvc
}
