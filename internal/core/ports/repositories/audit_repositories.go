package repositories

import (
	"context"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
)

// AuditLogWriter appends audit trail entries.
type AuditLogWriter interface {
	CreateAuditLog(ctx context.Context, entry domain.AuditLog) error
}

// NotificationWriter creates user inbox entries.
type NotificationWriter interface {
	CreateNotification(ctx context.Context, notification domain.Notification) error
}
