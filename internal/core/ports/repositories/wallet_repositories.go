package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// GetWallet retrieves the wallet of a user. Returns apperrors.ErrNotFound if missing.
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
}

// WalletWriter defines balance mutations. Only the investment decision flows use it.
type WalletWriter interface {
	// DebitWallet subtracts amount from the user's balance.
	DebitWallet(ctx context.Context, userID string, amount decimal.Decimal, now time.Time) error
}
