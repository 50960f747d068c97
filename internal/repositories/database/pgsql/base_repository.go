package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
)

// SQLSTATE codes the store maps to domain errors.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgCheckViolation       = "23514"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx, so a repository can run
// either standalone or inside a unit of work.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB dbtx
	// versions holds the row versions read in the current unit of work. Nil
	// outside a transaction.
	versions versionTracker
}

type versionTracker map[string]int64

func versionKey(table, id string) string {
	return table + ":" + id
}

func (r *BaseRepository) recordVersion(table, id string, version int64) {
	if r.versions != nil {
		r.versions[versionKey(table, id)] = version
	}
}

// expectedVersion returns the version read earlier in this unit of work, or -1
// when the row was not read, which disables the version predicate.
func (r *BaseRepository) expectedVersion(table, id string) int64 {
	if v, ok := r.versions[versionKey(table, id)]; ok {
		return v
	}
	return -1
}

// TxManager runs units of work as REPEATABLE READ transactions.
type TxManager struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionRunner = (*TxManager)(nil)

// WithinTransaction implements portsrepo.TransactionRunner.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := m.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return apperrors.NewAppError(http.StatusServiceUnavailable, "failed to begin transaction", err)
	}
	defer func() {
		// Rollback after a successful commit returns pgx.ErrTxClosed.
		_ = tx.Rollback(ctx)
	}()

	if err := fn(ctx, newTxRepositories(tx)); err != nil {
		return translateTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		if errors.Is(translateTxError(err), apperrors.ErrTransactionConflict) {
			return translateTxError(err)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

// translateTxError maps serialization failures and deadlocks to
// apperrors.ErrTransactionConflict so the service retries them.
func translateTxError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected:
			return fmt.Errorf("%w: %s", apperrors.ErrTransactionConflict, pgErr.Message)
		case pgCheckViolation:
			if pgErr.ConstraintName == "wallets_balance_non_negative" {
				return fmt.Errorf("%w: %s", apperrors.ErrInsufficientBalance, pgErr.Message)
			}
		}
	}
	return err
}
