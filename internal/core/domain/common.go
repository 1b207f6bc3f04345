package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Stamp sets all audit fields to the given actor and instant.
func (a *AuditFields) Stamp(userID string, at time.Time) {
	a.CreatedAt = at
	a.CreatedBy = userID
	a.LastUpdatedAt = at
	a.LastUpdatedBy = userID
}
