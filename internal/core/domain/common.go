package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Version is the optimistic-concurrency token maintained by the store.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	Version       int64     `json:"version"`
}

// Actor identifies the staff member (or service caller) performing an action.
type Actor struct {
	ID    string `json:"id"`    // Auth provider UID
	Label string `json:"label"` // Usually the admin's email
}
