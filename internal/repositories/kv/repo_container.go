package kv

import (
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
)

// NewRepositoryProvider assembles all entity repositories over the given
// store.
func NewRepositoryProvider(store portsrepo.KVStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CostCodeRepo: newCostCodeRepository(store),
		InvoiceRepo:  newInvoiceRepository(store),
		DraftRepo:    newDraftRepository(store),
		ProjectRepo:  newProjectRepository(store),
		CustomerRepo: newCustomerRepository(store),
		CompanyRepo:  newCompanyRepository(store),
	}
}
