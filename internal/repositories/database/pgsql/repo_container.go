package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the PostgreSQL repositories for the service layer.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxRunner:         &TxManager{Pool: dbPool},
		InvestmentRepo:   newPgxInvestmentRepository(dbPool),
		TransactionRepo:  &PgxTransactionRepository{BaseRepository: BaseRepository{DB: dbPool}},
		NotificationRepo: &PgxNotificationRepository{BaseRepository: BaseRepository{DB: dbPool}},
	}
}

// txRepositories is the facade handed to a unit of work. All repositories share
// the transaction and the versions read so far.
type txRepositories struct {
	*PgxInvestmentRepository
	*PgxWalletRepository
	*PgxProjectRepository
	*PgxTransactionRepository
	*PgxAuditLogRepository
}

var _ portsrepo.TxRepositories = (*txRepositories)(nil)

func newTxRepositories(tx pgx.Tx) *txRepositories {
	base := BaseRepository{DB: tx, versions: versionTracker{}}
	return &txRepositories{
		PgxInvestmentRepository:  &PgxInvestmentRepository{BaseRepository: base},
		PgxWalletRepository:      &PgxWalletRepository{BaseRepository: base},
		PgxProjectRepository:     &PgxProjectRepository{BaseRepository: base},
		PgxTransactionRepository: &PgxTransactionRepository{BaseRepository: base},
		PgxAuditLogRepository:    &PgxAuditLogRepository{BaseRepository: base},
	}
}
