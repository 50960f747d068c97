package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	"github.com/SscSPs/investment_admin_core/internal/models"
	"github.com/SscSPs/investment_admin_core/internal/utils/mapping"
	"github.com/SscSPs/investment_admin_core/internal/utils/pagination"
)

const selectTransactionFields = `
	transaction_id, user_id, project_id, investment_id, amount, currency_code, type, status,
	description, reference, created_at, approved_at, approved_by, rejected_at, rejected_by,
	rejection_reason
`

type PgxTransactionRepository struct {
	BaseRepository
}

var (
	_ portsrepo.TransactionHistoryReader = (*PgxTransactionRepository)(nil)
	_ portsrepo.TransactionHistoryWriter = (*PgxTransactionRepository)(nil)
)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.UserID,
		&t.ProjectID,
		&t.InvestmentID,
		&t.Amount,
		&t.CurrencyCode,
		&t.Type,
		&t.Status,
		&t.Description,
		&t.Reference,
		&t.CreatedAt,
		&t.ApprovedAt,
		&t.ApprovedBy,
		&t.RejectedAt,
		&t.RejectedBy,
		&t.RejectionReason,
	)
	return t, err
}

// FindLatestByInvestmentID returns the most recent record referencing the investment.
func (r *PgxTransactionRepository) FindLatestByInvestmentID(ctx context.Context, investmentID string) (*domain.Transaction, error) {
	query := `SELECT ` + selectTransactionFields + `
		FROM transactions
		WHERE investment_id = $1
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT 1;`

	t, err := scanTransaction(r.DB.QueryRow(ctx, query, investmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest transaction for investment %s: %w", investmentID, err)
	}
	txn := mapping.ToDomainTransaction(t)
	return &txn, nil
}

// ListByInvestmentID retrieves a page of records for an investment, newest first.
func (r *PgxTransactionRepository) ListByInvestmentID(ctx context.Context, investmentID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + selectTransactionFields + ` FROM transactions WHERE investment_id = $1`
	orderByClause := `ORDER BY created_at DESC, transaction_id DESC`
	args := []any{investmentID}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}
		// Tuple comparison keeps the cursor stable when created_at ties.
		query += ` AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for investment %s: %w", investmentID, err)
	}
	defer rows.Close()

	results := make([]domain.Transaction, 0, fetchLimit)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row for investment %s: %w", investmentID, err)
		}
		results = append(results, mapping.ToDomainTransaction(t))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows for investment %s: %w", investmentID, err)
	}

	if len(results) <= limit {
		return results, nil, nil
	}
	results = results[:limit]
	last := results[limit-1]
	token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
	return results, &token, nil
}

// CreateTransaction inserts a new history record.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, user_id, project_id, investment_id, amount, currency_code, type, status,
			description, reference, created_at, approved_at, approved_by, rejected_at, rejected_by,
			rejection_reason
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.DB.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.ProjectID,
		m.InvestmentID,
		m.Amount,
		m.CurrencyCode,
		m.Type,
		m.Status,
		m.Description,
		m.Reference,
		m.CreatedAt,
		m.ApprovedAt,
		m.ApprovedBy,
		m.RejectedAt,
		m.RejectedBy,
		m.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}
