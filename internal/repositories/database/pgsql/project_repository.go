package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	"github.com/SscSPs/investment_admin_core/internal/models"
	"github.com/SscSPs/investment_admin_core/internal/utils/mapping"
)

const projectsTable = "projects"

type PgxProjectRepository struct {
	BaseRepository
}

var (
	_ portsrepo.ProjectReader = (*PgxProjectRepository)(nil)
	_ portsrepo.ProjectWriter = (*PgxProjectRepository)(nil)
)

// GetProject retrieves a project and normalises its legacy columns.
func (r *PgxProjectRepository) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT project_id, name, title, project_name, target_amount, target, goal_amount,
		       total_invested, total_investment, updated_at, version
		FROM projects
		WHERE project_id = $1;
	`
	var m models.Project
	err := r.DB.QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID,
		&m.Name,
		&m.Title,
		&m.ProjectName,
		&m.TargetAmount,
		&m.Target,
		&m.GoalAmount,
		&m.TotalInvested,
		&m.TotalInvestment,
		&m.UpdatedAt,
		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	r.recordVersion(projectsTable, m.ProjectID, m.Version)
	p := mapping.ToDomainProject(m)
	return &p, nil
}

// IncrementProjectInvested adds amount to both invested-capital columns. Both are
// set from the same base so a row with only one legacy column populated ends up
// consistent.
func (r *PgxProjectRepository) IncrementProjectInvested(ctx context.Context, projectID string, amount decimal.Decimal, now time.Time) error {
	query := `
		UPDATE projects
		SET total_invested   = COALESCE(total_invested, total_investment, 0) + $2,
		    total_investment = COALESCE(total_invested, total_investment, 0) + $2,
		    updated_at = $3, version = version + 1
		WHERE project_id = $1 AND ($4::bigint < 0 OR version = $4::bigint);
	`
	tag, err := r.DB.Exec(ctx, query, projectID, amount, now, r.expectedVersion(projectsTable, projectID))
	if err != nil {
		return fmt.Errorf("failed to credit project %s: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: project %s changed since it was read", apperrors.ErrTransactionConflict, projectID)
	}
	return nil
}
