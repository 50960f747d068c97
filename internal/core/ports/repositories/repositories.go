package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxRunner        TransactionRunner
	InvestmentRepo  InvestmentReader
	TransactionRepo TransactionHistoryReader
	// NotificationRepo is used outside the unit of work for best-effort inbox entries.
	NotificationRepo NotificationWriter
}
