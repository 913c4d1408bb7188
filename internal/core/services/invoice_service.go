package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/costbook/costbook_app/internal/apperrors"
	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/render"
	"github.com/shopspring/decimal"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	costCodeRepo portsrepo.CostCodeReader
	projectRepo  portsrepo.ProjectReader
	companyRepo  portsrepo.CompanyReader
	confirmer    portssvc.Confirmer
}

// InvoiceServiceOption is a functional option for configuring the invoice
// directory service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceConfirmer replaces the confirmation capability used before
// destructive operations
func WithInvoiceConfirmer(c portssvc.Confirmer) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.confirmer = c
	}
}

// NewInvoiceService creates a new invoice directory service
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	costCodeRepo portsrepo.CostCodeReader,
	projectRepo portsrepo.ProjectReader,
	companyRepo portsrepo.CompanyReader,
	options ...InvoiceServiceOption,
) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo:  invoiceRepo,
		costCodeRepo: costCodeRepo,
		projectRepo:  projectRepo,
		companyRepo:  companyRepo,
		confirmer:    AutoConfirm{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices")
		return nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) SearchInvoices(ctx context.Context, query string) ([]domain.Invoice, error) {
	invoices, err := s.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return invoices, nil
	}

	matched := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if strings.Contains(strings.ToLower(inv.InvoiceNumber), q) ||
			strings.Contains(strings.ToLower(inv.InvoiceName), q) {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices")
		return nil, err
	}
	for i := range invoices {
		if invoices[i].InvoiceID == invoiceID {
			return &invoices[i], nil
		}
	}
	return nil, fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if !s.confirmer.Confirm(ctx, "Delete this invoice? This cannot be undone.") {
		s.LogDebug(ctx, "Invoice deletion not confirmed",
			slog.String("invoice_id", invoiceID))
		return nil
	}

	invoices, err := s.invoiceRepo.FindInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices")
		return err
	}

	kept := invoices[:0]
	for _, inv := range invoices {
		if inv.InvoiceID != invoiceID {
			kept = append(kept, inv)
		}
	}
	if len(kept) == len(invoices) {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}

	if err := s.invoiceRepo.SaveInvoices(ctx, kept); err != nil {
		s.LogError(ctx, err, "Failed to save invoices",
			slog.String("invoice_id", invoiceID))
		return err
	}

	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) TotalOf(invoice domain.Invoice) decimal.Decimal {
	return domain.ComputeTotals(invoice.Macros).Grand
}

func (s *invoiceService) RenderInvoice(ctx context.Context, invoiceID string) ([]byte, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	costCodes, err := s.costCodeRepo.FindCostCodes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cost codes")
		return nil, err
	}
	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load projects")
		return nil, err
	}
	company, err := s.companyRepo.FindCompany(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load company profile")
		return nil, err
	}

	// A dangling project id keeps the raw id on the printout rather than
	// failing the render.
	projectName := invoice.ProjectID
	for _, p := range projects {
		if p.ProjectID == invoice.ProjectID {
			projectName = p.Name
			break
		}
	}

	doc := render.BuildDocument(*invoice, costCodes, projectName, company)
	html, err := render.HTML(doc)
	if err != nil {
		s.LogError(ctx, err, "Failed to render invoice",
			slog.String("invoice_id", invoiceID))
		return nil, err
	}
	return html, nil
}
