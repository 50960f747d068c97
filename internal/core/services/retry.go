package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
)

// RetryPolicy bounds how often a unit of work is re-run after a commit conflict.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    5,
		InitialBackoff: 25 * time.Millisecond,
		MaxBackoff:     500 * time.Millisecond,
	}
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOffContext {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	b := backoff.NewExponentialBackOff()
	if p.InitialBackoff > 0 {
		b.InitialInterval = p.InitialBackoff
	}
	if p.MaxBackoff > 0 {
		b.MaxInterval = p.MaxBackoff
	}
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx)
}

// runInTransaction executes fn as one unit of work, re-running it from scratch
// while the store reports a conflict. Any other error ends the loop at once.
func (s *investmentService) runInTransaction(ctx context.Context, action domain.AuditAction, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	attempts := 0
	operation := func() error {
		attempts++
		err := s.repos.TxRunner.WithinTransaction(ctx, fn)
		if err == nil || errors.Is(err, apperrors.ErrTransactionConflict) {
			return err
		}
		return backoff.Permanent(err)
	}
	notify := func(err error, wait time.Duration) {
		s.metrics.TransactionRetried(action)
		s.LogDebug(ctx, "Transaction conflict, retrying",
			slog.String("action", string(action)),
			slog.Int("attempt", attempts),
			slog.Duration("wait", wait))
	}

	err := backoff.RetryNotify(operation, s.retry.backOff(ctx), notify)
	if errors.Is(err, apperrors.ErrTransactionConflict) {
		return fmt.Errorf("%w: gave up after %d attempts", apperrors.ErrTransactionConflict, attempts)
	}
	return err
}
