package kv

import (
	"context"
	"fmt"

	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
)

// CustomerRepository persists customer records under their fixed key.
type CustomerRepository struct {
	store portsrepo.KVStore
}

func newCustomerRepository(store portsrepo.KVStore) portsrepo.CustomerRepositoryFacade {
	return &CustomerRepository{store: store}
}

var _ portsrepo.CustomerRepositoryFacade = (*CustomerRepository)(nil)

func (r *CustomerRepository) FindCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	if _, err := r.store.Load(ctx, portsrepo.KeyCustomers, &customers); err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) SaveCustomers(ctx context.Context, customers []domain.Customer) error {
	if err := r.store.Save(ctx, portsrepo.KeyCustomers, customers); err != nil {
		return fmt.Errorf("failed to save customers: %w", err)
	}
	return nil
}
