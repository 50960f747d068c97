package domain

import "time"

// AuditAction names an administrative action recorded in the audit trail.
type AuditAction string

const (
	AuditApproveInvestment AuditAction = "APPROVE_INVESTMENT"
	AuditRejectInvestment  AuditAction = "REJECT_INVESTMENT"
)

// AuditResult is the outcome of an audited action.
type AuditResult string

const (
	AuditSuccess AuditResult = "SUCCESS"
	AuditFailure AuditResult = "FAILURE"
)

// AuditLog is an immutable record of who did what, when, and with which result.
type AuditLog struct {
	AuditLogID   string            `json:"auditLogID"`
	Action       AuditAction       `json:"action"`
	ActorID      string            `json:"actorID"`
	ActorLabel   string            `json:"actorLabel"`
	TargetUserID string            `json:"targetUserID"`
	TargetID     string            `json:"targetID"`
	Result       AuditResult       `json:"result"`
	Metadata     map[string]string `json:"metadata"`
	CreatedAt    time.Time         `json:"createdAt"`
}
