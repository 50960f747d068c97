package mapping

import (
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	"github.com/SscSPs/investment_admin_core/internal/models"
)

// ToModelTransaction converts a domain.Transaction to a transactions row.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		ProjectID:       ptr(d.ProjectID),
		InvestmentID:    ptr(d.InvestmentID),
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		Type:            string(d.Type),
		Status:          string(d.Status),
		Description:     d.Description,
		Reference:       d.Reference,
		CreatedAt:       d.CreatedAt,
		ApprovedAt:      d.ApprovedAt,
		ApprovedBy:      d.ApprovedBy,
		RejectedAt:      d.RejectedAt,
		RejectedBy:      d.RejectedBy,
		RejectionReason: d.RejectionReason,
	}
}

// ToDomainTransaction converts a transactions row to a domain.Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		ProjectID:       deref(m.ProjectID),
		InvestmentID:    deref(m.InvestmentID),
		Amount:          m.Amount,
		CurrencyCode:    m.CurrencyCode,
		Type:            domain.TransactionType(m.Type),
		Status:          domain.TransactionStatus(m.Status),
		Description:     m.Description,
		Reference:       m.Reference,
		CreatedAt:       m.CreatedAt,
		ApprovedAt:      m.ApprovedAt,
		ApprovedBy:      m.ApprovedBy,
		RejectedAt:      m.RejectedAt,
		RejectedBy:      m.RejectedBy,
		RejectionReason: m.RejectionReason,
	}
}

// ToModelAuditLog converts a domain.AuditLog to an audit_logs row.
func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		AuditLogID:   d.AuditLogID,
		Action:       string(d.Action),
		ActorID:      d.ActorID,
		ActorLabel:   d.ActorLabel,
		TargetUserID: d.TargetUserID,
		TargetID:     d.TargetID,
		Result:       string(d.Result),
		Metadata:     d.Metadata,
		CreatedAt:    d.CreatedAt,
	}
}

// ToModelNotification converts a domain.Notification to a notifications row.
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		UserID:         d.UserID,
		Type:           string(d.Type),
		Title:          d.Title,
		Message:        d.Message,
		Read:           d.Read,
		CreatedAt:      d.CreatedAt,
	}
}
