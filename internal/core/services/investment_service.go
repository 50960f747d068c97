package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_admin_core/internal/core/ports/services"
	"github.com/SscSPs/investment_admin_core/internal/dto"
)

const (
	defaultCurrencyCode = "USD"
	defaultPageSize     = 20
)

// investmentService implements the approval and rejection flows on top of an
// optimistic transaction runner.
type investmentService struct {
	BaseService
	repos           portsrepo.RepositoryProvider
	publisher       portssvc.EventPublisher
	metrics         portssvc.MetricsRecorder
	retry           RetryPolicy
	now             func() time.Time
	defaultCurrency string
}

// InvestmentServiceOption is a functional option for configuring the investment service
type InvestmentServiceOption func(*investmentService)

// WithEventPublisher sets the publisher used after a decision commits.
func WithEventPublisher(p portssvc.EventPublisher) InvestmentServiceOption {
	return func(s *investmentService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithMetricsRecorder sets the recorder for decision outcomes and retries.
func WithMetricsRecorder(m portssvc.MetricsRecorder) InvestmentServiceOption {
	return func(s *investmentService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRetryPolicy overrides the conflict retry policy.
func WithRetryPolicy(p RetryPolicy) InvestmentServiceOption {
	return func(s *investmentService) {
		s.retry = p
	}
}

// WithClock overrides the time source. Timestamps are always stored in UTC.
func WithClock(now func() time.Time) InvestmentServiceOption {
	return func(s *investmentService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithDefaultCurrency sets the currency used when neither a prior record nor the
// investment names one.
func WithDefaultCurrency(code string) InvestmentServiceOption {
	return func(s *investmentService) {
		if code != "" {
			s.defaultCurrency = code
		}
	}
}

// NewInvestmentService creates a new investment service with the provided options
func NewInvestmentService(repos portsrepo.RepositoryProvider, options ...InvestmentServiceOption) portssvc.InvestmentSvcFacade {
	svc := &investmentService{
		repos:           repos,
		publisher:       noopPublisher{},
		metrics:         noopMetrics{},
		retry:           DefaultRetryPolicy(),
		now:             time.Now,
		defaultCurrency: defaultCurrencyCode,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) clock() time.Time {
	return s.now().UTC()
}

// GetInvestment retrieves an investment by ID.
func (s *investmentService) GetInvestment(ctx context.Context, investmentID string) (*domain.Investment, error) {
	inv, err := s.repos.InvestmentRepo.GetInvestment(ctx, investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: investment %s", apperrors.ErrNotFound, investmentID)
		}
		s.LogError(ctx, err, "Failed to get investment", slog.String("investment_id", investmentID))
		return nil, fmt.Errorf("failed to get investment %s: %w", investmentID, err)
	}
	return inv, nil
}

// ListInvestmentTransactions returns the history records of an investment, newest first.
func (s *investmentService) ListInvestmentTransactions(ctx context.Context, investmentID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.GetInvestment(ctx, investmentID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	txns, nextToken, err := s.repos.TransactionRepo.ListByInvestmentID(ctx, investmentID, limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to list investment transactions", slog.String("investment_id", investmentID))
		return nil, fmt.Errorf("failed to list transactions of investment %s: %w", investmentID, err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	return &dto.ListTransactionsResponse{Transactions: txns, NextToken: nextToken}, nil
}

// recordDecision reports a finished approval or rejection call to the metrics recorder.
func (s *investmentService) recordDecision(action domain.AuditAction, err error, alreadyProcessed bool, started time.Time) {
	s.metrics.DecisionCompleted(action, decisionOutcome(err, alreadyProcessed), s.clock().Sub(started))
}

func decisionOutcome(err error, alreadyProcessed bool) string {
	switch {
	case err == nil && alreadyProcessed:
		return "already_processed"
	case err == nil:
		return "success"
	case errors.Is(err, apperrors.ErrTransactionConflict):
		return "conflict"
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrInvalidStateTransition),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrWalletNotFound),
		apperrors.StatusCode(err) == http.StatusUnprocessableEntity:
		return "rejected"
	default:
		return "error"
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, domain.InvestmentEvent) error { return nil }

type noopMetrics struct{}

func (noopMetrics) DecisionCompleted(domain.AuditAction, string, time.Duration) {}
func (noopMetrics) TransactionRetried(domain.AuditAction)                       {}
func (noopMetrics) SideEffectFailed(string)                                     {}
