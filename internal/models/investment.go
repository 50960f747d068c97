package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Investment mirrors a row of the investments table.
// Numeric columns are scanned raw so that NULL, NaN and infinities survive to the
// mapping layer, which decides what is a usable amount.
type Investment struct {
	InvestmentID       string
	UserID             *string
	ProjectID          *string
	Amount             pgtype.Numeric
	Status             string
	ExpectedReturn     pgtype.Numeric
	RealizedReturn     pgtype.Numeric
	CurrencyCode       *string
	TransactionID      *string
	ApprovedAt         *time.Time
	ApprovedBy         *string
	CancelledAt        *time.Time
	CancelledBy        *string
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int64
}
