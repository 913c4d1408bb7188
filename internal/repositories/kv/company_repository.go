package kv

import (
	"context"
	"fmt"

	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
)

// CompanyRepository persists the singleton company profile under its
// fixed key.
type CompanyRepository struct {
	store portsrepo.KVStore
}

func newCompanyRepository(store portsrepo.KVStore) portsrepo.CompanyRepositoryFacade {
	return &CompanyRepository{store: store}
}

var _ portsrepo.CompanyRepositoryFacade = (*CompanyRepository)(nil)

// FindCompany retrieves the profile, or nil when none has been saved yet.
func (r *CompanyRepository) FindCompany(ctx context.Context) (*domain.Company, error) {
	var company domain.Company
	found, err := r.store.Load(ctx, portsrepo.KeyCompany, &company)
	if err != nil {
		return nil, fmt.Errorf("failed to load company profile: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &company, nil
}

// SaveCompany creates or replaces the profile.
func (r *CompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	if err := r.store.Save(ctx, portsrepo.KeyCompany, company); err != nil {
		return fmt.Errorf("failed to save company profile: %w", err)
	}
	return nil
}
