package domain

// Project is a job/site that invoices and customers reference.
type Project struct {
	ProjectID string `json:"id"`
	Name      string `json:"name"`
	AuditFields
}
