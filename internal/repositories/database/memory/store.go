// Package memory provides an in-memory store with the same optimistic
// transaction contract as the PostgreSQL store. It backs the service tests and
// the STORE_DRIVER=memory development mode.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	"github.com/SscSPs/investment_admin_core/internal/utils/pagination"
)

// Store keeps every collection in maps guarded by one mutex.
// Investments, wallets and projects carry a version that is bumped on every write.
type Store struct {
	mu            sync.Mutex
	investments   map[string]domain.Investment
	wallets       map[string]domain.Wallet
	projects      map[string]domain.Project
	transactions  []domain.Transaction
	auditLogs     []domain.AuditLog
	notifications []domain.Notification

	// beforeCommit runs after the unit of work body and before validation.
	beforeCommit func()
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		investments: make(map[string]domain.Investment),
		wallets:     make(map[string]domain.Wallet),
		projects:    make(map[string]domain.Project),
	}
}

var (
	_ portsrepo.TransactionRunner        = (*Store)(nil)
	_ portsrepo.InvestmentReader         = (*Store)(nil)
	_ portsrepo.TransactionHistoryReader = (*Store)(nil)
	_ portsrepo.NotificationWriter       = (*Store)(nil)
)

// NewRepositoryProvider wires a Store into the service layer's provider.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxRunner:         s,
		InvestmentRepo:   s,
		TransactionRepo:  s,
		NotificationRepo: s,
	}
}

// SetBeforeCommitHook installs fn to run between a unit of work's body and its
// commit. Tests use it to interleave a concurrent writer deterministically.
func (s *Store) SetBeforeCommitHook(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beforeCommit = fn
}

// --- Seeding and inspection ---

// PutInvestment inserts or replaces an investment, bumping its version.
func (s *Store) PutInvestment(inv domain.Investment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv.Version = s.investments[inv.InvestmentID].Version + 1
	s.investments[inv.InvestmentID] = inv
}

// PutWallet inserts or replaces a wallet, bumping its version.
func (s *Store) PutWallet(w domain.Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Version = s.wallets[w.UserID].Version + 1
	s.wallets[w.UserID] = w
}

// PutProject inserts or replaces a project, bumping its version.
func (s *Store) PutProject(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Version = s.projects[p.ProjectID].Version + 1
	s.projects[p.ProjectID] = p
}

// PutTransaction appends a history record.
func (s *Store) PutTransaction(txn domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, txn)
}

// Wallet returns a copy of a user's wallet.
func (s *Store) Wallet(userID string) (domain.Wallet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[userID]
	return w, ok
}

// Project returns a copy of a project.
func (s *Store) Project(projectID string) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[projectID]
	return p, ok
}

// Transactions returns a copy of all history records in insertion order.
func (s *Store) Transactions() []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Transaction(nil), s.transactions...)
}

// AuditLogs returns a copy of all audit entries in insertion order.
func (s *Store) AuditLogs() []domain.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditLog(nil), s.auditLogs...)
}

// Notifications returns a copy of all notifications in insertion order.
func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.notifications...)
}

// --- Non-transactional repository methods ---

// GetInvestment implements portsrepo.InvestmentReader.
func (s *Store) GetInvestment(_ context.Context, investmentID string) (*domain.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.investments[investmentID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &inv, nil
}

// FindLatestByInvestmentID implements portsrepo.TransactionHistoryReader.
func (s *Store) FindLatestByInvestmentID(_ context.Context, investmentID string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matches := s.byInvestmentLocked(investmentID)
	if len(matches) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &matches[0], nil
}

// ListByInvestmentID implements portsrepo.TransactionHistoryReader.
func (s *Store) ListByInvestmentID(_ context.Context, investmentID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	s.mu.Lock()
	matches := s.byInvestmentLocked(investmentID)
	s.mu.Unlock()

	if nextToken != nil && *nextToken != "" {
		tokenCreatedAt, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filtered := matches[:0]
		for _, txn := range matches {
			if pagination.After(txn.CreatedAt, txn.TransactionID, tokenCreatedAt, tokenID) {
				filtered = append(filtered, txn)
			}
		}
		matches = filtered
	}

	if limit <= 0 || len(matches) <= limit {
		return matches, nil, nil
	}
	page := matches[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
	return page, &token, nil
}

// byInvestmentLocked returns the investment's records newest first.
func (s *Store) byInvestmentLocked(investmentID string) []domain.Transaction {
	var matches []domain.Transaction
	for _, txn := range s.transactions {
		if txn.InvestmentID == investmentID {
			matches = append(matches, txn)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].TransactionID > matches[j].TransactionID
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return matches
}

// CreateNotification implements portsrepo.NotificationWriter.
func (s *Store) CreateNotification(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return nil
}
