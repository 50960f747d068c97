package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	"github.com/SscSPs/investment_admin_core/internal/dto"
	"github.com/SscSPs/investment_admin_core/internal/utils"
)

// ApproveInvestment moves a pending investment to active. Inside one unit of
// work it debits the user's wallet, credits the project, records a new history
// record and an audit entry. Approving an already active investment is a no-op.
func (s *investmentService) ApproveInvestment(ctx context.Context, investmentID string, actor domain.Actor) (*dto.DecisionResult, error) {
	started := s.clock()
	logger := s.GetLogger(ctx).With(
		slog.String("investment_id", investmentID),
		slog.String("actor_id", actor.ID))

	prior := s.findPriorTransaction(ctx, investmentID)

	var (
		committed        committedDecision
		alreadyProcessed bool
	)
	err := s.runInTransaction(ctx, domain.AuditApproveInvestment, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		// Every attempt starts from fresh reads.
		committed = committedDecision{actor: actor}
		alreadyProcessed = false

		inv, project, wallet, err := s.loadForApproval(ctx, repos, investmentID, prior)
		if err != nil {
			return err
		}
		if inv.Status == domain.InvestmentActive {
			alreadyProcessed = true
			committed.investment = *inv
			return nil
		}

		now := s.clock()
		provenance := s.provenanceFor(inv, prior, descriptionApproved, now)
		amount := inv.Amount.Decimal

		if err := validateWalletBalance(inv, wallet, provenance.CurrencyCode); err != nil {
			return err
		}

		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			UserID:        inv.UserID,
			ProjectID:     inv.ProjectID,
			InvestmentID:  inv.InvestmentID,
			Amount:        amount,
			CurrencyCode:  provenance.CurrencyCode,
			Type:          domain.TransactionTypeInvestment,
			Status:        domain.TransactionApproved,
			Description:   provenance.Description,
			Reference:     provenance.Reference,
			CreatedAt:     provenance.CreatedAt,
			ApprovedAt:    &now,
			ApprovedBy:    &actor.ID,
		}

		if err := repos.DebitWallet(ctx, inv.UserID, amount, now); err != nil {
			return fmt.Errorf("debit wallet of user %s: %w", inv.UserID, err)
		}
		if err := repos.IncrementProjectInvested(ctx, inv.ProjectID, amount, now); err != nil {
			return fmt.Errorf("credit project %s: %w", inv.ProjectID, err)
		}
		if err := repos.MarkInvestmentActive(ctx, domain.InvestmentApproval{
			InvestmentID:  inv.InvestmentID,
			ApprovedBy:    actor.ID,
			ApprovedAt:    now,
			TransactionID: txn.TransactionID,
		}); err != nil {
			return fmt.Errorf("activate investment %s: %w", inv.InvestmentID, err)
		}
		if err := repos.CreateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("create transaction record: %w", err)
		}
		if err := repos.CreateAuditLog(ctx, domain.AuditLog{
			AuditLogID:   uuid.NewString(),
			Action:       domain.AuditApproveInvestment,
			ActorID:      actor.ID,
			ActorLabel:   actor.Label,
			TargetUserID: inv.UserID,
			TargetID:     inv.InvestmentID,
			Result:       domain.AuditSuccess,
			Metadata: map[string]string{
				"amount":       amount.String(),
				"investmentId": inv.InvestmentID,
				"projectId":    inv.ProjectID,
			},
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("create audit log: %w", err)
		}

		committed.investment = *inv
		committed.project = project
		committed.transaction = txn
		return nil
	})
	s.recordDecision(domain.AuditApproveInvestment, err, alreadyProcessed, started)

	if err != nil {
		logger.Warn("Investment approval failed", slog.String("error", err.Error()))
		return nil, err
	}
	if alreadyProcessed {
		logger.Info("Investment already active, approval is a no-op")
		return &dto.DecisionResult{
			InvestmentID:     investmentID,
			Status:           domain.InvestmentActive,
			AlreadyProcessed: true,
		}, nil
	}

	logger.Info("Investment approved",
		slog.String("transaction_id", committed.transaction.TransactionID),
		slog.String("amount", committed.transaction.Amount.String()))
	s.runSideEffects(ctx, domain.EventInvestmentApproved, committed)

	return &dto.DecisionResult{
		InvestmentID:  investmentID,
		Status:        domain.InvestmentActive,
		TransactionID: committed.transaction.TransactionID,
	}, nil
}

// loadForApproval performs every read of the approval unit of work. The project
// is only read once the investment passed its own checks, and the wallet only
// once the project has room for the amount.
func (s *investmentService) loadForApproval(ctx context.Context, repos portsrepo.TxRepositories, investmentID string, prior *domain.Transaction) (*domain.Investment, *domain.Project, *domain.Wallet, error) {
	inv, err := repos.GetInvestment(ctx, investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, nil, fmt.Errorf("%w: investment %s", apperrors.ErrNotFound, investmentID)
		}
		return nil, nil, nil, fmt.Errorf("read investment %s: %w", investmentID, err)
	}
	if inv.Status == domain.InvestmentActive {
		return inv, nil, nil, nil
	}
	if err := validateInvestmentForApproval(inv); err != nil {
		return nil, nil, nil, err
	}

	project, err := repos.GetProject(ctx, inv.ProjectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, nil, fmt.Errorf("%w: project %s", apperrors.ErrNotFound, inv.ProjectID)
		}
		return nil, nil, nil, fmt.Errorf("read project %s: %w", inv.ProjectID, err)
	}
	if err := validateProjectCapital(project); err != nil {
		return nil, nil, nil, err
	}
	currencyCode := s.provenanceFor(inv, prior, descriptionApproved, time.Time{}).CurrencyCode
	if err := validateProjectCapacity(inv, project, currencyCode); err != nil {
		return nil, nil, nil, err
	}

	wallet, err := repos.GetWallet(ctx, inv.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, nil, fmt.Errorf("%w: user %s", apperrors.ErrWalletNotFound, inv.UserID)
		}
		return nil, nil, nil, fmt.Errorf("read wallet of user %s: %w", inv.UserID, err)
	}
	return inv, project, wallet, nil
}

// validateInvestmentForApproval checks status, user reference, amount and
// project reference, in that order.
func validateInvestmentForApproval(inv *domain.Investment) error {
	if !inv.IsPending() {
		return fmt.Errorf("%w: investment %s is %s, only pending investments can be approved",
			apperrors.ErrInvalidStateTransition, inv.InvestmentID, inv.Status)
	}
	if inv.UserID == "" {
		return fmt.Errorf("%w: investment %s", apperrors.ErrInvalidUserReference, inv.InvestmentID)
	}
	if !inv.HasPositiveAmount() {
		return fmt.Errorf("%w: investment %s", apperrors.ErrInvalidAmount, inv.InvestmentID)
	}
	if inv.ProjectID == "" {
		return fmt.Errorf("%w: investment %s", apperrors.ErrInvalidProjectReference, inv.InvestmentID)
	}
	return nil
}

func validateProjectCapital(project *domain.Project) error {
	if !project.TotalInvested.Valid || project.TotalInvested.Decimal.IsNegative() {
		return fmt.Errorf("%w: project %s", apperrors.ErrCorruptProjectState, project.ProjectID)
	}
	return nil
}

// validateProjectCapacity rejects an amount a fixed-target project cannot take.
// Uncapped projects accept any amount.
func validateProjectCapacity(inv *domain.Investment, project *domain.Project, currencyCode string) error {
	if !project.HasFixedTarget() {
		return nil
	}
	remaining := project.RemainingCapacity()
	if !remaining.IsPositive() {
		return fmt.Errorf("%w: project %s", apperrors.ErrProjectGoalReached, project.ProjectID)
	}
	if inv.Amount.Decimal.GreaterThan(remaining) {
		return fmt.Errorf("%w: only %s is still available in project %s",
			apperrors.ErrExceedsProjectCapacity, utils.FormatMoney(remaining, currencyCode), project.ProjectID)
	}
	return nil
}

func validateWalletBalance(inv *domain.Investment, wallet *domain.Wallet, currencyCode string) error {
	amount := inv.Amount.Decimal
	if !wallet.Balance.Valid {
		return fmt.Errorf("%w: wallet of user %s", apperrors.ErrCorruptWalletState, wallet.UserID)
	}
	if !wallet.CanCover(amount) {
		return fmt.Errorf("%w: balance %s is below %s",
			apperrors.ErrInsufficientBalance,
			utils.FormatMoney(wallet.Balance.Decimal, currencyCode),
			utils.FormatMoney(amount, currencyCode))
	}
	return nil
}
