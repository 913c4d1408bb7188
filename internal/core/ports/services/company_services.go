package services

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
	"github.com/costbook/costbook_app/internal/dto"
)

// CompanySvcFacade defines the service contract for the singleton company
// profile.
type CompanySvcFacade interface {
	// GetCompany returns the saved profile, or ErrNotFound before first
	// setup.
	GetCompany(ctx context.Context) (*domain.Company, error)

	// SaveCompany creates or replaces the profile.
	SaveCompany(ctx context.Context, req dto.SaveCompanyRequest) (*domain.Company, error)
}
