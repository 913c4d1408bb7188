package services_test

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockCostCodeRepository is a mock type for the CostCodeRepositoryFacade interface
type MockCostCodeRepository struct {
	mock.Mock
}

func (m *MockCostCodeRepository) FindCostCodes(ctx context.Context) ([]domain.CostCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCode), args.Error(1)
}

func (m *MockCostCodeRepository) SaveCostCodes(ctx context.Context, costCodes []domain.CostCode) error {
	args := m.Called(ctx, costCodes)
	return args.Error(0)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoices(ctx context.Context, invoices []domain.Invoice) error {
	args := m.Called(ctx, invoices)
	return args.Error(0)
}

// MockDraftRepository is a mock type for the DraftRepositoryFacade interface
type MockDraftRepository struct {
	mock.Mock
}

func (m *MockDraftRepository) FindDrafts(ctx context.Context) ([]domain.InvoiceDraft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceDraft), args.Error(1)
}

func (m *MockDraftRepository) SaveDrafts(ctx context.Context, drafts []domain.InvoiceDraft) error {
	args := m.Called(ctx, drafts)
	return args.Error(0)
}

// MockProjectRepository is a mock type for the ProjectRepositoryFacade interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProjects(ctx context.Context, projects []domain.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

// MockCustomerRepository is a mock type for the CustomerRepositoryFacade interface
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomers(ctx context.Context, customers []domain.Customer) error {
	args := m.Called(ctx, customers)
	return args.Error(0)
}

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompany(ctx context.Context) (*domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// MockConfirmer is a mock type for the Confirmer interface
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, message string) bool {
	args := m.Called(ctx, message)
	return args.Bool(0)
}
