package mapping

import (
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	"github.com/SscSPs/investment_admin_core/internal/models"
)

// ToDomainInvestment converts an investment row to a domain.Investment.
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:       m.InvestmentID,
		UserID:             deref(m.UserID),
		ProjectID:          deref(m.ProjectID),
		Amount:             ToNullDecimal(m.Amount),
		Status:             domain.InvestmentStatus(m.Status),
		ExpectedReturn:     ToNullDecimal(m.ExpectedReturn),
		RealizedReturn:     ToNullDecimal(m.RealizedReturn),
		CurrencyCode:       deref(m.CurrencyCode),
		TransactionID:      m.TransactionID,
		ApprovedAt:         m.ApprovedAt,
		ApprovedBy:         m.ApprovedBy,
		CancelledAt:        m.CancelledAt,
		CancelledBy:        m.CancelledBy,
		CancellationReason: m.CancellationReason,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.UpdatedAt,
			Version:       m.Version,
		},
	}
}

// ToDomainWallet converts a wallet row to a domain.Wallet.
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		UserID:    m.UserID,
		Balance:   ToNullDecimal(m.Balance),
		UpdatedAt: m.UpdatedAt,
		Version:   m.Version,
	}
}
