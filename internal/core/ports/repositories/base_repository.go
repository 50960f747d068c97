package repositories

import (
	"context"
)

// TransactionRunner executes a single attempt of an atomic read-validate-write unit.
//
// All reads inside fn observe a consistent snapshot and must precede all writes.
// If fn returns an error nothing is persisted. If another writer changed any
// document fn read, the commit fails with apperrors.ErrTransactionConflict and
// the caller may re-run fn from scratch.
type TransactionRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

// TxRepositories is the repository facade available inside a unit of work.
type TxRepositories interface {
	InvestmentReader
	InvestmentWriter
	WalletReader
	WalletWriter
	ProjectReader
	ProjectWriter
	TransactionHistoryWriter
	AuditLogWriter
}
