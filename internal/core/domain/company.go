package domain

// Company is the singleton company profile printed on invoices. Exactly
// one instance exists per store.
type Company struct {
	CompanyID string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	LogoURL   string `json:"logoUrl,omitempty"`
	AuditFields
}
