package services

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
	"github.com/costbook/costbook_app/internal/dto"
)

// CustomerSvcFacade defines the service contract for customer records.
type CustomerSvcFacade interface {
	// CreateCustomer validates required fields and that every referenced
	// project exists, then prepends the customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}
