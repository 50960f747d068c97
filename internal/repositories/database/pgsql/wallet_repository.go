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

const walletsTable = "wallets"

type PgxWalletRepository struct {
	BaseRepository
}

var (
	_ portsrepo.WalletReader = (*PgxWalletRepository)(nil)
	_ portsrepo.WalletWriter = (*PgxWalletRepository)(nil)
)

// GetWallet retrieves the wallet of a user.
func (r *PgxWalletRepository) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `SELECT user_id, balance, updated_at, version FROM wallets WHERE user_id = $1;`

	var m models.Wallet
	err := r.DB.QueryRow(ctx, query, userID).Scan(&m.UserID, &m.Balance, &m.UpdatedAt, &m.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet of user %s: %w", userID, err)
	}

	r.recordVersion(walletsTable, m.UserID, m.Version)
	w := mapping.ToDomainWallet(m)
	return &w, nil
}

// DebitWallet subtracts amount from the balance. The wallets_balance_non_negative
// constraint rejects an overdraft.
func (r *PgxWalletRepository) DebitWallet(ctx context.Context, userID string, amount decimal.Decimal, now time.Time) error {
	query := `
		UPDATE wallets
		SET balance = balance - $2, updated_at = $3, version = version + 1
		WHERE user_id = $1 AND ($4::bigint < 0 OR version = $4::bigint);
	`
	tag, err := r.DB.Exec(ctx, query, userID, amount, now, r.expectedVersion(walletsTable, userID))
	if err != nil {
		return fmt.Errorf("failed to debit wallet of user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: wallet of user %s changed since it was read", apperrors.ErrTransactionConflict, userID)
	}
	return nil
}
