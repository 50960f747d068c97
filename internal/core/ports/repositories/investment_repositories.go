package repositories

import (
	"context"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
)

// InvestmentReader defines read operations for investment data
type InvestmentReader interface {
	// GetInvestment retrieves an investment by ID. Returns apperrors.ErrNotFound if missing.
	GetInvestment(ctx context.Context, investmentID string) (*domain.Investment, error)
}

// InvestmentWriter defines the state transitions an investment may undergo.
type InvestmentWriter interface {
	// MarkInvestmentActive moves a pending investment to active.
	MarkInvestmentActive(ctx context.Context, approval domain.InvestmentApproval) error

	// MarkInvestmentCancelled moves a pending investment to cancelled.
	MarkInvestmentCancelled(ctx context.Context, cancellation domain.InvestmentCancellation) error
}
