package repositories

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// CustomerReader defines read operations for customer records.
type CustomerReader interface {
	FindCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer records.
type CustomerWriter interface {
	SaveCustomers(ctx context.Context, customers []domain.Customer) error
}

// CustomerRepositoryFacade combines all customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
