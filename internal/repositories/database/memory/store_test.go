package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
)

func seededStore() *Store {
	s := NewStore()
	s.PutWallet(domain.Wallet{UserID: "u1", Balance: decimal.NewNullDecimal(decimal.NewFromInt(100))})
	s.PutProject(domain.Project{ProjectID: "p1", TotalInvested: decimal.NewNullDecimal(decimal.Zero)})
	s.PutInvestment(domain.Investment{InvestmentID: "i1", UserID: "u1", ProjectID: "p1", Status: domain.InvestmentPending})
	return s
}

func TestWithinTransaction_CommitsAllWrites(t *testing.T) {
	s := seededStore()
	now := time.Now().UTC()

	err := s.WithinTransaction(context.Background(), func(ctx context.Context, repos portsrepo.TxRepositories) error {
		_, err := repos.GetWallet(ctx, "u1")
		require.NoError(t, err)
		require.NoError(t, repos.DebitWallet(ctx, "u1", decimal.NewFromInt(40), now))
		require.NoError(t, repos.IncrementProjectInvested(ctx, "p1", decimal.NewFromInt(40), now))
		require.NoError(t, repos.MarkInvestmentActive(ctx, domain.InvestmentApproval{InvestmentID: "i1", ApprovedBy: "a", ApprovedAt: now, TransactionID: "t1"}))
		require.NoError(t, repos.CreateTransaction(ctx, domain.Transaction{TransactionID: "t1", InvestmentID: "i1"}))
		return repos.CreateAuditLog(ctx, domain.AuditLog{AuditLogID: "al1"})
	})
	require.NoError(t, err)

	w, _ := s.Wallet("u1")
	assert.True(t, w.Balance.Decimal.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, int64(2), w.Version)
	p, _ := s.Project("p1")
	assert.True(t, p.TotalInvested.Decimal.Equal(decimal.NewFromInt(40)))
	inv, _ := s.GetInvestment(context.Background(), "i1")
	assert.Equal(t, domain.InvestmentActive, inv.Status)
	assert.Equal(t, "t1", *inv.TransactionID)
	assert.Len(t, s.Transactions(), 1)
	assert.Len(t, s.AuditLogs(), 1)
}

func TestWithinTransaction_ErrorDiscardsWrites(t *testing.T) {
	s := seededStore()
	boom := errors.New("boom")

	err := s.WithinTransaction(context.Background(), func(ctx context.Context, repos portsrepo.TxRepositories) error {
		require.NoError(t, repos.DebitWallet(ctx, "u1", decimal.NewFromInt(40), time.Now()))
		require.NoError(t, repos.CreateTransaction(ctx, domain.Transaction{TransactionID: "t1"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	w, _ := s.Wallet("u1")
	assert.True(t, w.Balance.Decimal.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, s.Transactions())
}

func TestWithinTransaction_StaleReadConflicts(t *testing.T) {
	s := seededStore()
	s.SetBeforeCommitHook(func() {
		w, _ := s.Wallet("u1")
		s.PutWallet(w)
	})

	err := s.WithinTransaction(context.Background(), func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if _, err := repos.GetWallet(ctx, "u1"); err != nil {
			return err
		}
		return repos.DebitWallet(ctx, "u1", decimal.NewFromInt(10), time.Now())
	})
	require.ErrorIs(t, err, apperrors.ErrTransactionConflict)

	w, _ := s.Wallet("u1")
	assert.True(t, w.Balance.Decimal.Equal(decimal.NewFromInt(100)))
}

func TestWithinTransaction_MissingDocumentCreatedConcurrentlyConflicts(t *testing.T) {
	s := seededStore()
	s.SetBeforeCommitHook(func() {
		s.PutWallet(domain.Wallet{UserID: "u2", Balance: decimal.NewNullDecimal(decimal.NewFromInt(5))})
	})

	err := s.WithinTransaction(context.Background(), func(ctx context.Context, repos portsrepo.TxRepositories) error {
		_, err := repos.GetWallet(ctx, "u2")
		require.ErrorIs(t, err, apperrors.ErrNotFound)
		return repos.CreateAuditLog(ctx, domain.AuditLog{AuditLogID: "al1"})
	})
	require.ErrorIs(t, err, apperrors.ErrTransactionConflict)
	assert.Empty(t, s.AuditLogs())
}

func TestWithinTransaction_ReadAfterWriteRejected(t *testing.T) {
	s := seededStore()

	err := s.WithinTransaction(context.Background(), func(ctx context.Context, repos portsrepo.TxRepositories) error {
		require.NoError(t, repos.CreateAuditLog(ctx, domain.AuditLog{AuditLogID: "al1"}))
		_, err := repos.GetInvestment(ctx, "i1")
		return err
	})
	require.ErrorIs(t, err, apperrors.ErrReadAfterWrite)
	assert.Empty(t, s.AuditLogs())
}

func TestWithinTransaction_WriteToMissingDocumentFails(t *testing.T) {
	s := seededStore()

	err := s.WithinTransaction(context.Background(), func(ctx context.Context, repos portsrepo.TxRepositories) error {
		require.NoError(t, repos.CreateTransaction(ctx, domain.Transaction{TransactionID: "t1"}))
		return repos.IncrementProjectInvested(ctx, "missing", decimal.NewFromInt(1), time.Now())
	})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, s.Transactions())
}

func TestWithinTransaction_CancelledContext(t *testing.T) {
	s := seededStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		return repos.CreateAuditLog(ctx, domain.AuditLog{AuditLogID: "al1"})
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.AuditLogs())
}

func TestListByInvestmentID_OrdersNewestFirst(t *testing.T) {
	s := NewStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.PutTransaction(domain.Transaction{TransactionID: "a", InvestmentID: "i1", CreatedAt: base})
	s.PutTransaction(domain.Transaction{TransactionID: "c", InvestmentID: "i1", CreatedAt: base.Add(time.Hour)})
	s.PutTransaction(domain.Transaction{TransactionID: "b", InvestmentID: "i1", CreatedAt: base.Add(time.Hour)})

	latest, err := s.FindLatestByInvestmentID(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, "c", latest.TransactionID)

	all, next, err := s.ListByInvestmentID(context.Background(), "i1", 10, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].TransactionID, all[1].TransactionID, all[2].TransactionID})

	_, err = s.FindLatestByInvestmentID(context.Background(), "other")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
