package kv

import (
	"context"
	"fmt"

	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
)

// InvoiceRepository persists the directory of committed invoices under
// its fixed key. Stored order is insertion order, newest first.
type InvoiceRepository struct {
	store portsrepo.KVStore
}

func newInvoiceRepository(store portsrepo.KVStore) portsrepo.InvoiceRepositoryFacade {
	return &InvoiceRepository{store: store}
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

// FindInvoices retrieves the whole directory; an absent key is an empty
// directory.
func (r *InvoiceRepository) FindInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices := []domain.Invoice{}
	if _, err := r.store.Load(ctx, portsrepo.KeyInvoices, &invoices); err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	return invoices, nil
}

// SaveInvoices replaces the whole directory.
func (r *InvoiceRepository) SaveInvoices(ctx context.Context, invoices []domain.Invoice) error {
	if err := r.store.Save(ctx, portsrepo.KeyInvoices, invoices); err != nil {
		return fmt.Errorf("failed to save invoices: %w", err)
	}
	return nil
}

// DraftRepository persists in-progress invoice drafts under their fixed
// key.
type DraftRepository struct {
	store portsrepo.KVStore
}

func newDraftRepository(store portsrepo.KVStore) portsrepo.DraftRepositoryFacade {
	return &DraftRepository{store: store}
}

var _ portsrepo.DraftRepositoryFacade = (*DraftRepository)(nil)

// FindDrafts retrieves all drafts; an absent key means no drafts.
func (r *DraftRepository) FindDrafts(ctx context.Context) ([]domain.InvoiceDraft, error) {
	drafts := []domain.InvoiceDraft{}
	if _, err := r.store.Load(ctx, portsrepo.KeyDrafts, &drafts); err != nil {
		return nil, fmt.Errorf("failed to load invoice drafts: %w", err)
	}
	return drafts, nil
}

// SaveDrafts replaces all drafts.
func (r *DraftRepository) SaveDrafts(ctx context.Context, drafts []domain.InvoiceDraft) error {
	if err := r.store.Save(ctx, portsrepo.KeyDrafts, drafts); err != nil {
		return fmt.Errorf("failed to save invoice drafts: %w", err)
	}
	return nil
}
