package repositories

import (
	"context"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
)

// TransactionHistoryReader defines read operations for history records.
type TransactionHistoryReader interface {
	// FindLatestByInvestmentID returns the most recent record referencing the
	// investment, or apperrors.ErrNotFound.
	FindLatestByInvestmentID(ctx context.Context, investmentID string) (*domain.Transaction, error)

	// ListByInvestmentID returns records for an investment, newest first, using
	// token-based pagination. It returns the records and a token for the next page.
	ListByInvestmentID(ctx context.Context, investmentID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionHistoryWriter appends history records. There is no update or delete.
type TransactionHistoryWriter interface {
	CreateTransaction(ctx context.Context, txn domain.Transaction) error
}
