package domain

import "time"

// NotificationType categorises an inbox entry.
type NotificationType string

const (
	NotificationInvestmentApproved NotificationType = "investment_approved"
)

// Notification is a user-facing inbox entry. It is not authoritative state.
type Notification struct {
	NotificationID string           `json:"notificationID"`
	UserID         string           `json:"userID"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"createdAt"`
}
