package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// The app has a single local operator, so no user references are kept.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
