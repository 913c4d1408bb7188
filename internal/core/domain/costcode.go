package domain

// CostCode is a catalog entry classifying work categories (RSMeans style).
// Codes are case-insensitively unique within the catalog; macro lines
// reference cost codes but never own them.
type CostCode struct {
	CostCodeID string `json:"id"`   // Primary Key (UUID)
	Code       string `json:"code"` // User-visible code, e.g. "09 29 00"
	Title      string `json:"title"`
	AuditFields
}
