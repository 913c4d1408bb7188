package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/costbook/costbook_app/internal/apperrors"
	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/dto"
	"github.com/google/uuid"
)

// companyService implements the CompanySvcFacade interface
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company profile service
func NewCompanyService(repo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: repo}
}

// Ensure companyService implements the CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) GetCompany(ctx context.Context) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompany(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load company profile")
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("company profile: %w", apperrors.ErrNotFound)
	}
	return company, nil
}

func (s *companyService) SaveCompany(ctx context.Context, req dto.SaveCompanyRequest) (*domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}

	existing, err := s.companyRepo.FindCompany(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load company profile")
		return nil, err
	}

	now := time.Now()
	company := domain.Company{
		Name:    name,
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		LogoURL: strings.TrimSpace(req.LogoURL),
	}
	if existing != nil {
		// Saves replace the profile but keep its identity and creation
		// time.
		company.CompanyID = existing.CompanyID
		company.CreatedAt = existing.CreatedAt
	} else {
		company.CompanyID = uuid.NewString()
		company.CreatedAt = now
	}
	company.LastUpdatedAt = now

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company profile")
		return nil, err
	}

	s.LogInfo(ctx, "Company profile saved")
	return &company, nil
}
