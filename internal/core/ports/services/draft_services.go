package services

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
	"github.com/costbook/costbook_app/internal/dto"
)

// DraftSvcFacade defines the service contract for in-progress invoice
// drafts. Drafts are mutable and may violate commit invariants; only
// CommitDraft enforces them.
type DraftSvcFacade interface {
	// CreateDraft starts a draft seeded with one macro line holding one
	// empty item. The first catalog entry (by code) is preselected when
	// the catalog is non-empty.
	CreateDraft(ctx context.Context) (*domain.InvoiceDraft, error)

	GetDraftByID(ctx context.Context, draftID string) (*domain.InvoiceDraft, error)
	ListDrafts(ctx context.Context) ([]domain.InvoiceDraft, error)

	// UpdateDraft merges header fields (number, name, project);
	// nil fields are left untouched.
	UpdateDraft(ctx context.Context, draftID string, req dto.UpdateDraftRequest) (*domain.InvoiceDraft, error)
	DeleteDraft(ctx context.Context, draftID string) error

	AddMacro(ctx context.Context, draftID string) (*domain.InvoiceDraft, error)
	RemoveMacro(ctx context.Context, draftID string, macroID string) (*domain.InvoiceDraft, error)
	UpdateMacro(ctx context.Context, draftID string, macroID string, req dto.UpdateMacroRequest) (*domain.InvoiceDraft, error)

	AddItem(ctx context.Context, draftID string, macroID string) (*domain.InvoiceDraft, error)
	RemoveItem(ctx context.Context, draftID string, macroID string, itemID string) (*domain.InvoiceDraft, error)
	UpdateItem(ctx context.Context, draftID string, macroID string, itemID string, req dto.UpdateItemRequest) (*domain.InvoiceDraft, error)

	// GetDraftTotals recomputes the per-item, per-macro and grand totals.
	GetDraftTotals(ctx context.Context, draftID string) (*domain.InvoiceTotals, error)

	// CommitDraft validates the draft against the current catalog and
	// project list, stamps the creation time, prepends the resulting
	// invoice to the directory and deletes the draft. All-or-nothing: a
	// validation failure leaves both store keys untouched.
	CommitDraft(ctx context.Context, draftID string) (*domain.Invoice, error)
}
