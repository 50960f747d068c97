package services

import (
	"context"
	"time"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
)

// EventPublisher delivers investment lifecycle events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.InvestmentEvent) error
}

// MetricsRecorder receives operational signals from the decision flows.
type MetricsRecorder interface {
	// DecisionCompleted records the outcome of an approval or rejection call.
	DecisionCompleted(action domain.AuditAction, outcome string, elapsed time.Duration)

	// TransactionRetried records a unit-of-work retry caused by a conflict.
	TransactionRetried(action domain.AuditAction)

	// SideEffectFailed records a failed best-effort side effect.
	SideEffectFailed(effect string)
}
