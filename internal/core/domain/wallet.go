package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds the single spendable balance of a user.
// Balance is invalid when the stored value is missing or not finite.
type Wallet struct {
	UserID    string              `json:"userID"`
	Balance   decimal.NullDecimal `json:"balance"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Version   int64               `json:"version"`
}

// CanCover reports whether the wallet balance is at least amount.
func (w Wallet) CanCover(amount decimal.Decimal) bool {
	return w.Balance.Valid && w.Balance.Decimal.GreaterThanOrEqual(amount)
}
