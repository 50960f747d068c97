package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
)

const (
	descriptionApproved = "Investment approved"
	descriptionRejected = "Investment rejected"
)

// findPriorTransaction looks up the latest history record of an investment.
// It runs outside the unit of work and never fails: a miss or a store error
// yields nil.
func (s *investmentService) findPriorTransaction(ctx context.Context, investmentID string) *domain.Transaction {
	prior, err := s.repos.TransactionRepo.FindLatestByInvestmentID(ctx, investmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Prior transaction lookup failed, using defaults",
				slog.String("investment_id", investmentID))
			s.metrics.SideEffectFailed(effectPriorLookup)
		}
		return nil
	}
	return prior
}

// provenanceFor decides the metadata a new terminal record carries: the prior
// record's values first, then the investment's own fields, then defaults.
func (s *investmentService) provenanceFor(inv *domain.Investment, prior *domain.Transaction, description string, now time.Time) domain.Provenance {
	p := domain.Provenance{
		CurrencyCode: s.defaultCurrency,
		Description:  description,
		Reference:    inv.InvestmentID,
		CreatedAt:    now,
	}
	if inv.CurrencyCode != "" {
		p.CurrencyCode = inv.CurrencyCode
	}
	if prior == nil {
		return p
	}

	if prior.CurrencyCode != "" {
		p.CurrencyCode = prior.CurrencyCode
	}
	if prior.Description != "" {
		p.Description = prior.Description
	}
	if prior.Reference != "" {
		p.Reference = prior.Reference
	}
	if !prior.CreatedAt.IsZero() {
		p.CreatedAt = prior.CreatedAt
	}
	return p
}
