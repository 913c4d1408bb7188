package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/costbook/costbook_app/internal/apperrors"
	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/dto"
	"github.com/google/uuid"
)

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	projectRepo  portsrepo.ProjectReader
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, projectRepo portsrepo.ProjectReader) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo: customerRepo,
		projectRepo:  projectRepo,
	}
}

// Ensure customerService implements the CustomerSvcFacade interface
var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}
	if len(req.ProjectIDs) == 0 {
		return nil, fmt.Errorf("%w: customer must reference at least one project", apperrors.ErrValidation)
	}

	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load projects")
		return nil, err
	}
	known := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		known[p.ProjectID] = struct{}{}
	}
	for _, id := range req.ProjectIDs {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("project %s: %w", id, apperrors.ErrUnresolvedReference)
		}
	}

	customers, err := s.customerRepo.FindCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load customers")
		return nil, err
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		Name:        name,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     strings.TrimSpace(req.Address),
		ProjectIDs:  req.ProjectIDs,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	customers = append([]domain.Customer{customer}, customers...)
	if err := s.customerRepo.SaveCustomers(ctx, customers); err != nil {
		s.LogError(ctx, err, "Failed to save customers",
			slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load customers")
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	customers, err := s.customerRepo.FindCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load customers")
		return err
	}

	kept := customers[:0]
	for _, c := range customers {
		if c.CustomerID != customerID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(customers) {
		return fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
	}

	if err := s.customerRepo.SaveCustomers(ctx, kept); err != nil {
		s.LogError(ctx, err, "Failed to save customers",
			slog.String("customer_id", customerID))
		return err
	}

	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}
