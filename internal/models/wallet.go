package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Wallet mirrors a row of the wallets table.
type Wallet struct {
	UserID    string
	Balance   pgtype.Numeric
	UpdatedAt time.Time
	Version   int64
}
