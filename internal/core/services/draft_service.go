package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/costbook/costbook_app/internal/apperrors"
	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/dto"
	"github.com/google/uuid"
)

// draftService implements the DraftSvcFacade interface
type draftService struct {
	BaseService
	draftRepo    portsrepo.DraftRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	costCodeRepo portsrepo.CostCodeReader
	projectRepo  portsrepo.ProjectReader
}

// NewDraftService creates a new draft service
func NewDraftService(
	draftRepo portsrepo.DraftRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	costCodeRepo portsrepo.CostCodeReader,
	projectRepo portsrepo.ProjectReader,
) portssvc.DraftSvcFacade {
	return &draftService{
		draftRepo:    draftRepo,
		invoiceRepo:  invoiceRepo,
		costCodeRepo: costCodeRepo,
		projectRepo:  projectRepo,
	}
}

// Ensure draftService implements the DraftSvcFacade interface
var _ portssvc.DraftSvcFacade = (*draftService)(nil)

func (s *draftService) CreateDraft(ctx context.Context) (*domain.InvoiceDraft, error) {
	costCodes, err := s.costCodeRepo.FindCostCodes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cost codes")
		return nil, err
	}

	// The first catalog entry by code is preselected when one exists;
	// with an empty catalog the macro starts without a cost code and
	// commit rejects the draft until the catalog is populated.
	seedCostCodeID := ""
	if len(costCodes) > 0 {
		sort.SliceStable(costCodes, func(i, j int) bool {
			return costCodes[i].Code < costCodes[j].Code
		})
		seedCostCodeID = costCodes[0].CostCodeID
	}

	now := time.Now()
	draft := domain.InvoiceDraft{
		DraftID: uuid.NewString(),
		Macros:  []domain.MacroLine{domain.NewMacroLine(seedCostCodeID)},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	drafts, err := s.draftRepo.FindDrafts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load drafts")
		return nil, err
	}
	drafts = append([]domain.InvoiceDraft{draft}, drafts...)
	if err := s.draftRepo.SaveDrafts(ctx, drafts); err != nil {
		s.LogError(ctx, err, "Failed to save drafts", slog.String("draft_id", draft.DraftID))
		return nil, err
	}

	s.LogInfo(ctx, "Draft created", slog.String("draft_id", draft.DraftID))
	return &draft, nil
}

func (s *draftService) GetDraftByID(ctx context.Context, draftID string) (*domain.InvoiceDraft, error) {
	drafts, err := s.draftRepo.FindDrafts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load drafts")
		return nil, err
	}
	for i := range drafts {
		if drafts[i].DraftID == draftID {
			return &drafts[i], nil
		}
	}
	return nil, fmt.Errorf("draft %s: %w", draftID, apperrors.ErrNotFound)
}

func (s *draftService) ListDrafts(ctx context.Context) ([]domain.InvoiceDraft, error) {
	drafts, err := s.draftRepo.FindDrafts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load drafts")
		return nil, err
	}
	if drafts == nil {
		return []domain.InvoiceDraft{}, nil
	}
	return drafts, nil
}

// mutateDraft loads the draft list, applies fn to the draft with the given
// id, stamps the update time and saves the whole list back.
func (s *draftService) mutateDraft(ctx context.Context, draftID string, fn func(*domain.InvoiceDraft) error) (*domain.InvoiceDraft, error) {
	drafts, err := s.draftRepo.FindDrafts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load drafts")
		return nil, err
	}

	idx := -1
	for i := range drafts {
		if drafts[i].DraftID == draftID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("draft %s: %w", draftID, apperrors.ErrNotFound)
	}

	if err := fn(&drafts[idx]); err != nil {
		return nil, err
	}
	drafts[idx].LastUpdatedAt = time.Now()

	if err := s.draftRepo.SaveDrafts(ctx, drafts); err != nil {
		s.LogError(ctx, err, "Failed to save drafts", slog.String("draft_id", draftID))
		return nil, err
	}

	updated := drafts[idx]
	return &updated, nil
}

func (s *draftService) UpdateDraft(ctx context.Context, draftID string, req dto.UpdateDraftRequest) (*domain.InvoiceDraft, error) {
	return s.mutateDraft(ctx, draftID, func(d *domain.InvoiceDraft) error {
		if req.InvoiceNumber != nil {
			d.InvoiceNumber = *req.InvoiceNumber
		}
		if req.InvoiceName != nil {
			d.InvoiceName = *req.InvoiceName
		}
		if req.ProjectID != nil {
			d.ProjectID = *req.ProjectID
		}
		return nil
	})
}

func (s *draftService) DeleteDraft(ctx context.Context, draftID string) error {
	drafts, err := s.draftRepo.FindDrafts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load drafts")
		return err
	}

	kept := drafts[:0]
	for _, d := range drafts {
		if d.DraftID != draftID {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(drafts) {
		return fmt.Errorf("draft %s: %w", draftID, apperrors.ErrNotFound)
	}

	if err := s.draftRepo.SaveDrafts(ctx, kept); err != nil {
		s.LogError(ctx, err, "Failed to save drafts", slog.String("draft_id", draftID))
		return err
	}

	s.LogInfo(ctx, "Draft discarded", slog.String("draft_id", draftID))
	return nil
}

func (s *draftService) AddMacro(ctx context.Context, draftID string) (*domain.InvoiceDraft, error) {
	costCodes, err := s.costCodeRepo.FindCostCodes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cost codes")
		return nil, err
	}
	seedCostCodeID := ""
	if len(costCodes) > 0 {
		sort.SliceStable(costCodes, func(i, j int) bool {
			return costCodes[i].Code < costCodes[j].Code
		})
		seedCostCodeID = costCodes[0].CostCodeID
	}

	return s.mutateDraft(ctx, draftID, func(d *domain.InvoiceDraft) error {
		d.AddMacro(seedCostCodeID)
		return nil
	})
}

func (s *draftService) RemoveMacro(ctx context.Context, draftID string, macroID string) (*domain.InvoiceDraft, error) {
	return s.mutateDraft(ctx, draftID, func(d *domain.InvoiceDraft) error {
		d.RemoveMacro(macroID)
		return nil
	})
}

func (s *draftService) UpdateMacro(ctx context.Context, draftID string, macroID string, req dto.UpdateMacroRequest) (*domain.InvoiceDraft, error) {
	return s.mutateDraft(ctx, draftID, func(d *domain.InvoiceDraft) error {
		return d.UpdateMacro(macroID, req.ToMacroLinePatch())
	})
}

func (s *draftService) AddItem(ctx context.Context, draftID string, macroID string) (*domain.InvoiceDraft, error) {
	return s.mutateDraft(ctx, draftID, func(d *domain.InvoiceDraft) error {
		_, err := d.AddItem(macroID)
		return err
	})
}

func (s *draftService) RemoveItem(ctx context.Context, draftID string, macroID string, itemID string) (*domain.InvoiceDraft, error) {
	return s.mutateDraft(ctx, draftID, func(d *domain.InvoiceDraft) error {
		return d.RemoveItem(macroID, itemID)
	})
}

func (s *draftService) UpdateItem(ctx context.Context, draftID string, macroID string, itemID string, req dto.UpdateItemRequest) (*domain.InvoiceDraft, error) {
	return s.mutateDraft(ctx, draftID, func(d *domain.InvoiceDraft) error {
		return d.UpdateItem(macroID, itemID, req.ToLineItemPatch())
	})
}

func (s *draftService) GetDraftTotals(ctx context.Context, draftID string) (*domain.InvoiceTotals, error) {
	draft, err := s.GetDraftByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	totals := domain.ComputeTotals(draft.Macros)
	return &totals, nil
}

func (s *draftService) CommitDraft(ctx context.Context, draftID string) (*domain.Invoice, error) {
	drafts, err := s.draftRepo.FindDrafts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load drafts")
		return nil, err
	}

	idx := -1
	for i := range drafts {
		if drafts[i].DraftID == draftID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("draft %s: %w", draftID, apperrors.ErrNotFound)
	}
	draft := drafts[idx]

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
	projectExists := func(projectID string) bool {
		for _, p := range projects {
			if p.ProjectID == projectID {
				return true
			}
		}
		return false
	}

	if err := draft.Validate(costCodes, projectExists); err != nil {
		s.LogDebug(ctx, "Draft failed commit validation",
			slog.String("draft_id", draftID), slog.String("reason", err.Error()))
		return nil, err
	}

	// The invoice gets its own identity; the draft id never leaks into
	// the directory.
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: strings.TrimSpace(draft.InvoiceNumber),
		InvoiceName:   strings.TrimSpace(draft.InvoiceName),
		ProjectID:     draft.ProjectID,
		CreatedAt:     time.Now(),
		Macros:        draft.Macros,
	}

	invoices, err := s.invoiceRepo.FindInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices")
		return nil, err
	}
	invoices = append([]domain.Invoice{invoice}, invoices...)
	if err := s.invoiceRepo.SaveInvoices(ctx, invoices); err != nil {
		s.LogError(ctx, err, "Failed to save invoices",
			slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}

	kept := append(drafts[:idx:idx], drafts[idx+1:]...)
	if err := s.draftRepo.SaveDrafts(ctx, kept); err != nil {
		s.LogError(ctx, err, "Failed to remove committed draft",
			slog.String("draft_id", draftID))
		return nil, err
	}

	s.LogInfo(ctx, "Draft committed",
		slog.String("draft_id", draftID),
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	return &invoice, nil
}
