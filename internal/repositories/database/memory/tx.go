package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type docKind int

const (
	investmentDoc docKind = iota
	walletDoc
	projectDoc
)

type docKey struct {
	kind docKind
	id   string
}

// txView is one attempt of a unit of work. Reads record the version they saw
// (0 for a missing document); writes are buffered as operations and applied at
// commit only if every recorded version is still current.
type txView struct {
	store  *Store
	reads  map[docKey]int64
	ops    []func(st *staging) error
	writes bool
}

var _ portsrepo.TxRepositories = (*txView)(nil)

// WithinTransaction implements portsrepo.TransactionRunner.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	view := &txView{store: s, reads: make(map[docKey]int64)}
	if err := fn(ctx, view); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	hook := s.beforeCommit
	s.mu.Unlock()
	if hook != nil {
		hook()
	}

	return s.commit(view)
}

func (s *Store) commit(view *txView) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, seen := range view.reads {
		if s.versionLocked(key) != seen {
			return apperrors.ErrTransactionConflict
		}
	}

	st := &staging{
		store:       s,
		investments: make(map[string]domain.Investment),
		wallets:     make(map[string]domain.Wallet),
		projects:    make(map[string]domain.Project),
	}
	for _, op := range view.ops {
		if err := op(st); err != nil {
			return err
		}
	}

	for id, inv := range st.investments {
		inv.Version = s.investments[id].Version + 1
		s.investments[id] = inv
	}
	for id, w := range st.wallets {
		w.Version = s.wallets[id].Version + 1
		s.wallets[id] = w
	}
	for id, p := range st.projects {
		p.Version = s.projects[id].Version + 1
		s.projects[id] = p
	}
	s.transactions = append(s.transactions, st.transactions...)
	s.auditLogs = append(s.auditLogs, st.auditLogs...)
	return nil
}

func (s *Store) versionLocked(key docKey) int64 {
	switch key.kind {
	case investmentDoc:
		return s.investments[key.id].Version
	case walletDoc:
		return s.wallets[key.id].Version
	default:
		return s.projects[key.id].Version
	}
}

func (v *txView) beginRead(key docKey) error {
	if v.writes {
		return apperrors.ErrReadAfterWrite
	}
	return nil
}

func (v *txView) GetInvestment(_ context.Context, investmentID string) (*domain.Investment, error) {
	key := docKey{investmentDoc, investmentID}
	if err := v.beginRead(key); err != nil {
		return nil, err
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	inv, ok := v.store.investments[investmentID]
	v.reads[key] = inv.Version
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &inv, nil
}

func (v *txView) GetWallet(_ context.Context, userID string) (*domain.Wallet, error) {
	key := docKey{walletDoc, userID}
	if err := v.beginRead(key); err != nil {
		return nil, err
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	w, ok := v.store.wallets[userID]
	v.reads[key] = w.Version
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &w, nil
}

func (v *txView) GetProject(_ context.Context, projectID string) (*domain.Project, error) {
	key := docKey{projectDoc, projectID}
	if err := v.beginRead(key); err != nil {
		return nil, err
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	p, ok := v.store.projects[projectID]
	v.reads[key] = p.Version
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (v *txView) queue(op func(st *staging) error) {
	v.writes = true
	v.ops = append(v.ops, op)
}

func (v *txView) MarkInvestmentActive(_ context.Context, approval domain.InvestmentApproval) error {
	v.queue(func(st *staging) error {
		inv, err := st.investment(approval.InvestmentID)
		if err != nil {
			return err
		}
		inv.Status = domain.InvestmentActive
		inv.ApprovedAt = &approval.ApprovedAt
		inv.ApprovedBy = &approval.ApprovedBy
		inv.TransactionID = &approval.TransactionID
		inv.LastUpdatedAt = approval.ApprovedAt
		st.investments[inv.InvestmentID] = inv
		return nil
	})
	return nil
}

func (v *txView) MarkInvestmentCancelled(_ context.Context, cancellation domain.InvestmentCancellation) error {
	v.queue(func(st *staging) error {
		inv, err := st.investment(cancellation.InvestmentID)
		if err != nil {
			return err
		}
		inv.Status = domain.InvestmentCancelled
		inv.CancelledAt = &cancellation.CancelledAt
		inv.CancelledBy = &cancellation.CancelledBy
		inv.CancellationReason = &cancellation.Reason
		inv.TransactionID = &cancellation.TransactionID
		inv.LastUpdatedAt = cancellation.CancelledAt
		st.investments[inv.InvestmentID] = inv
		return nil
	})
	return nil
}

func (v *txView) DebitWallet(_ context.Context, userID string, amount decimal.Decimal, now time.Time) error {
	v.queue(func(st *staging) error {
		w, err := st.wallet(userID)
		if err != nil {
			return err
		}
		w.Balance = decimal.NewNullDecimal(w.Balance.Decimal.Sub(amount))
		w.UpdatedAt = now
		st.wallets[userID] = w
		return nil
	})
	return nil
}

func (v *txView) IncrementProjectInvested(_ context.Context, projectID string, amount decimal.Decimal, now time.Time) error {
	v.queue(func(st *staging) error {
		p, err := st.project(projectID)
		if err != nil {
			return err
		}
		p.TotalInvested = decimal.NewNullDecimal(p.TotalInvested.Decimal.Add(amount))
		p.UpdatedAt = now
		st.projects[projectID] = p
		return nil
	})
	return nil
}

func (v *txView) CreateTransaction(_ context.Context, txn domain.Transaction) error {
	v.queue(func(st *staging) error {
		st.transactions = append(st.transactions, txn)
		return nil
	})
	return nil
}

func (v *txView) CreateAuditLog(_ context.Context, entry domain.AuditLog) error {
	v.queue(func(st *staging) error {
		st.auditLogs = append(st.auditLogs, entry)
		return nil
	})
	return nil
}

// staging holds documents modified by the operations of one commit.
type staging struct {
	store        *Store
	investments  map[string]domain.Investment
	wallets      map[string]domain.Wallet
	projects     map[string]domain.Project
	transactions []domain.Transaction
	auditLogs    []domain.AuditLog
}

func (st *staging) investment(id string) (domain.Investment, error) {
	if inv, ok := st.investments[id]; ok {
		return inv, nil
	}
	inv, ok := st.store.investments[id]
	if !ok {
		return domain.Investment{}, fmt.Errorf("%w: investment %s", apperrors.ErrNotFound, id)
	}
	return inv, nil
}

func (st *staging) wallet(userID string) (domain.Wallet, error) {
	if w, ok := st.wallets[userID]; ok {
		return w, nil
	}
	w, ok := st.store.wallets[userID]
	if !ok {
		return domain.Wallet{}, fmt.Errorf("%w: wallet of user %s", apperrors.ErrNotFound, userID)
	}
	return w, nil
}

func (st *staging) project(id string) (domain.Project, error) {
	if p, ok := st.projects[id]; ok {
		return p, nil
	}
	p, ok := st.store.projects[id]
	if !ok {
		return domain.Project{}, fmt.Errorf("%w: project %s", apperrors.ErrNotFound, id)
	}
	return p, nil
}
