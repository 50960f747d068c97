package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	"github.com/SscSPs/investment_admin_core/internal/utils"
)

const (
	effectNotification = "notification"
	effectEvent        = "event"
	effectPriorLookup  = "prior_lookup"
)

// SideEffectResult is the outcome of one best-effort step run after a commit.
type SideEffectResult struct {
	Effect string
	Err    error
}

// committedDecision is what a successful unit of work hands to the side-effect phase.
type committedDecision struct {
	investment  domain.Investment
	project     *domain.Project
	transaction domain.Transaction
	actor       domain.Actor
	reason      string
}

// runSideEffects creates the user notification (approvals only) and publishes
// the lifecycle event. Failures are logged and counted, never returned to the caller.
func (s *investmentService) runSideEffects(ctx context.Context, eventType domain.InvestmentEventType, d committedDecision) []SideEffectResult {
	var results []SideEffectResult
	if eventType == domain.EventInvestmentApproved {
		results = append(results, SideEffectResult{Effect: effectNotification, Err: s.notifyApproved(ctx, d)})
	}
	results = append(results, SideEffectResult{Effect: effectEvent, Err: s.publishDecision(ctx, eventType, d)})

	for _, r := range results {
		if r.Err == nil {
			continue
		}
		s.metrics.SideEffectFailed(r.Effect)
		s.LogWarn(ctx, r.Err, "Side effect failed after commit",
			slog.String("effect", r.Effect),
			slog.String("investment_id", d.investment.InvestmentID))
	}
	return results
}

func (s *investmentService) notifyApproved(ctx context.Context, d committedDecision) error {
	if s.repos.NotificationRepo == nil {
		return nil
	}
	projectName := domain.Project{}.DisplayName()
	if d.project != nil {
		projectName = d.project.DisplayName()
	}

	n := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         d.investment.UserID,
		Type:           domain.NotificationInvestmentApproved,
		Title:          "Investment approved",
		Message: fmt.Sprintf("Your investment of %s in %s has been approved.",
			utils.FormatMoney(d.transaction.Amount, d.transaction.CurrencyCode), projectName),
		CreatedAt: s.clock(),
	}
	if err := s.repos.NotificationRepo.CreateNotification(ctx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (s *investmentService) publishDecision(ctx context.Context, eventType domain.InvestmentEventType, d committedDecision) error {
	event := domain.InvestmentEvent{
		Type:          eventType,
		InvestmentID:  d.investment.InvestmentID,
		UserID:        d.investment.UserID,
		ProjectID:     d.investment.ProjectID,
		TransactionID: d.transaction.TransactionID,
		Amount:        d.transaction.Amount,
		CurrencyCode:  d.transaction.CurrencyCode,
		ActorID:       d.actor.ID,
		Reason:        d.reason,
		OccurredAt:    s.clock(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}
