package repositories

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// CompanyReader defines read operations for the singleton company profile.
type CompanyReader interface {
	// FindCompany retrieves the profile, or nil when none has been saved.
	FindCompany(ctx context.Context) (*domain.Company, error)
}

// CompanyWriter defines write operations for the company profile.
type CompanyWriter interface {
	SaveCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines all company repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
