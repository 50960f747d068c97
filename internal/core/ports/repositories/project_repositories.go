package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// GetProject retrieves a project by ID. Returns apperrors.ErrNotFound if missing.
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
}

// ProjectWriter defines invested-capital mutations.
type ProjectWriter interface {
	// IncrementProjectInvested adds amount to every invested-capital counter of the project.
	IncrementProjectInvested(ctx context.Context, projectID string, amount decimal.Decimal, now time.Time) error
}
