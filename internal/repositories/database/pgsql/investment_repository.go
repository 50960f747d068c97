package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	"github.com/SscSPs/investment_admin_core/internal/models"
	"github.com/SscSPs/investment_admin_core/internal/utils/mapping"
)

const (
	investmentsTable = "investments"

	selectInvestmentFields = `
		investment_id, user_id, project_id, amount, status, expected_return, realized_return,
		currency_code, transaction_id, approved_at, approved_by, cancelled_at, cancelled_by,
		cancellation_reason, created_at, updated_at, version
	`
)

type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(pool *pgxpool.Pool) *PgxInvestmentRepository {
	return &PgxInvestmentRepository{BaseRepository: BaseRepository{DB: pool}}
}

var (
	_ portsrepo.InvestmentReader = (*PgxInvestmentRepository)(nil)
	_ portsrepo.InvestmentWriter = (*PgxInvestmentRepository)(nil)
)

// GetInvestment retrieves an investment by its ID.
func (r *PgxInvestmentRepository) GetInvestment(ctx context.Context, investmentID string) (*domain.Investment, error) {
	query := `SELECT ` + selectInvestmentFields + ` FROM investments WHERE investment_id = $1;`

	var m models.Investment
	err := r.DB.QueryRow(ctx, query, investmentID).Scan(
		&m.InvestmentID,
		&m.UserID,
		&m.ProjectID,
		&m.Amount,
		&m.Status,
		&m.ExpectedReturn,
		&m.RealizedReturn,
		&m.CurrencyCode,
		&m.TransactionID,
		&m.ApprovedAt,
		&m.ApprovedBy,
		&m.CancelledAt,
		&m.CancelledBy,
		&m.CancellationReason,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment %s: %w", investmentID, err)
	}

	r.recordVersion(investmentsTable, m.InvestmentID, m.Version)
	inv := mapping.ToDomainInvestment(m)
	return &inv, nil
}

// MarkInvestmentActive moves a pending investment to active.
func (r *PgxInvestmentRepository) MarkInvestmentActive(ctx context.Context, approval domain.InvestmentApproval) error {
	query := `
		UPDATE investments
		SET status = 'active', approved_at = $2, approved_by = $3, transaction_id = $4,
		    updated_at = $2, version = version + 1
		WHERE investment_id = $1 AND status = 'pending' AND ($5::bigint < 0 OR version = $5::bigint);
	`
	tag, err := r.DB.Exec(ctx, query,
		approval.InvestmentID,
		approval.ApprovedAt,
		approval.ApprovedBy,
		approval.TransactionID,
		r.expectedVersion(investmentsTable, approval.InvestmentID),
	)
	if err != nil {
		return fmt.Errorf("failed to activate investment %s: %w", approval.InvestmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: investment %s changed since it was read", apperrors.ErrTransactionConflict, approval.InvestmentID)
	}
	return nil
}

// MarkInvestmentCancelled moves a pending investment to cancelled.
func (r *PgxInvestmentRepository) MarkInvestmentCancelled(ctx context.Context, cancellation domain.InvestmentCancellation) error {
	query := `
		UPDATE investments
		SET status = 'cancelled', cancelled_at = $2, cancelled_by = $3, cancellation_reason = $4,
		    transaction_id = $5, updated_at = $2, version = version + 1
		WHERE investment_id = $1 AND status = 'pending' AND ($6::bigint < 0 OR version = $6::bigint);
	`
	tag, err := r.DB.Exec(ctx, query,
		cancellation.InvestmentID,
		cancellation.CancelledAt,
		cancellation.CancelledBy,
		cancellation.Reason,
		cancellation.TransactionID,
		r.expectedVersion(investmentsTable, cancellation.InvestmentID),
	)
	if err != nil {
		return fmt.Errorf("failed to cancel investment %s: %w", cancellation.InvestmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: investment %s changed since it was read", apperrors.ErrTransactionConflict, cancellation.InvestmentID)
	}
	return nil
}
