package domain

// Customer is a client record. A customer must reference at least one
// project at commit time.
type Customer struct {
	CustomerID  string   `json:"id"`
	Name        string   `json:"name"`
	CompanyName string   `json:"companyName,omitempty"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	ProjectIDs  []string `json:"projectIds"`
	AuditFields
}
