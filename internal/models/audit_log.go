package models

import "time"

// AuditLog mirrors a row of the audit_logs table. Metadata is stored as JSONB.
type AuditLog struct {
	AuditLogID   string
	Action       string
	ActorID      string
	ActorLabel   string
	TargetUserID string
	TargetID     string
	Result       string
	Metadata     map[string]string
	CreatedAt    time.Time
}

// Notification mirrors a row of the notifications table.
type Notification struct {
	NotificationID string
	UserID         string
	Type           string
	Title          string
	Message        string
	Read           bool
	CreatedAt      time.Time
}
