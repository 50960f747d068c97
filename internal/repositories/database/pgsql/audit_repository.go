package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_admin_core/internal/core/ports/repositories"
	"github.com/SscSPs/investment_admin_core/internal/utils/mapping"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

var _ portsrepo.AuditLogWriter = (*PgxAuditLogRepository)(nil)

// CreateAuditLog inserts an audit entry. Metadata is stored as JSONB.
func (r *PgxAuditLogRepository) CreateAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m := mapping.ToModelAuditLog(entry)
	query := `
		INSERT INTO audit_logs (audit_log_id, action, actor_id, actor_label, target_user_id, target_id, result, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.DB.Exec(ctx, query,
		m.AuditLogID,
		m.Action,
		m.ActorID,
		m.ActorLabel,
		m.TargetUserID,
		m.TargetID,
		m.Result,
		m.Metadata,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit log %s: %w", m.AuditLogID, err)
	}
	return nil
}

type PgxNotificationRepository struct {
	BaseRepository
}

var _ portsrepo.NotificationWriter = (*PgxNotificationRepository)(nil)

// CreateNotification inserts a user inbox entry.
func (r *PgxNotificationRepository) CreateNotification(ctx context.Context, n domain.Notification) error {
	m := mapping.ToModelNotification(n)
	query := `
		INSERT INTO notifications (notification_id, user_id, type, title, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.DB.Exec(ctx, query, m.NotificationID, m.UserID, m.Type, m.Title, m.Message, m.Read, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save notification %s: %w", m.NotificationID, err)
	}
	return nil
}
