package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	"github.com/SscSPs/investment_admin_core/internal/dto"
)

// RejectInvestment cancels a pending investment and records the reason. No money
// moves. Rejecting an already cancelled investment is a no-op whatever the reason;
// otherwise a non-blank reason is required.
func (s *investmentService) RejectInvestment(ctx context.Context, investmentID string, reason string, actor domain.Actor) (*dto.DecisionResult, error) {
	started := s.clock()
	logger := s.GetLogger(ctx).With(
		slog.String("investment_id", investmentID),
		slog.String("actor_id", actor.ID))

	reason = strings.TrimSpace(reason)

	prior := s.findPriorTransaction(ctx, investmentID)

	var (
		committed        committedDecision
		alreadyProcessed bool
	)
	err := s.runInTransaction(ctx, domain.AuditRejectInvestment, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		committed = committedDecision{actor: actor, reason: reason}
		alreadyProcessed = false

		inv, err := repos.GetInvestment(ctx, investmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: investment %s", apperrors.ErrNotFound, investmentID)
			}
			return fmt.Errorf("read investment %s: %w", investmentID, err)
		}
		if inv.Status == domain.InvestmentCancelled {
			alreadyProcessed = true
			committed.investment = *inv
			return nil
		}
		if !inv.IsPending() {
			return fmt.Errorf("%w: investment %s is %s, only pending investments can be rejected",
				apperrors.ErrInvalidStateTransition, inv.InvestmentID, inv.Status)
		}
		if reason == "" {
			return fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
		}

		now := s.clock()
		provenance := s.provenanceFor(inv, prior, descriptionRejected, now)

		txn := domain.Transaction{
			TransactionID:   uuid.NewString(),
			UserID:          inv.UserID,
			ProjectID:       inv.ProjectID,
			InvestmentID:    inv.InvestmentID,
			Amount:          inv.Amount.Decimal,
			CurrencyCode:    provenance.CurrencyCode,
			Type:            domain.TransactionTypeInvestment,
			Status:          domain.TransactionRejected,
			Description:     provenance.Description,
			Reference:       provenance.Reference,
			CreatedAt:       provenance.CreatedAt,
			RejectedAt:      &now,
			RejectedBy:      &actor.ID,
			RejectionReason: &reason,
		}

		if err := repos.MarkInvestmentCancelled(ctx, domain.InvestmentCancellation{
			InvestmentID:  inv.InvestmentID,
			CancelledBy:   actor.ID,
			CancelledAt:   now,
			Reason:        reason,
			TransactionID: txn.TransactionID,
		}); err != nil {
			return fmt.Errorf("cancel investment %s: %w", inv.InvestmentID, err)
		}
		if err := repos.CreateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("create transaction record: %w", err)
		}
		if err := repos.CreateAuditLog(ctx, domain.AuditLog{
			AuditLogID:   uuid.NewString(),
			Action:       domain.AuditRejectInvestment,
			ActorID:      actor.ID,
			ActorLabel:   actor.Label,
			TargetUserID: inv.UserID,
			TargetID:     inv.InvestmentID,
			Result:       domain.AuditSuccess,
			Metadata: map[string]string{
				"amount":       txn.Amount.String(),
				"investmentId": inv.InvestmentID,
				"projectId":    inv.ProjectID,
				"reason":       reason,
			},
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("create audit log: %w", err)
		}

		committed.investment = *inv
		committed.transaction = txn
		return nil
	})
	s.recordDecision(domain.AuditRejectInvestment, err, alreadyProcessed, started)

	if err != nil {
		logger.Warn("Investment rejection failed", slog.String("error", err.Error()))
		return nil, err
	}
	if alreadyProcessed {
		logger.Info("Investment already cancelled, rejection is a no-op")
		return &dto.DecisionResult{
			InvestmentID:     investmentID,
			Status:           domain.InvestmentCancelled,
			AlreadyProcessed: true,
		}, nil
	}

	logger.Info("Investment rejected", slog.String("transaction_id", committed.transaction.TransactionID))
	s.runSideEffects(ctx, domain.EventInvestmentRejected, committed)

	return &dto.DecisionResult{
		InvestmentID:  investmentID,
		Status:        domain.InvestmentCancelled,
		TransactionID: committed.transaction.TransactionID,
	}, nil
}
