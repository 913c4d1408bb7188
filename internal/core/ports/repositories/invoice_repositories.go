package repositories

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// InvoiceReader defines read operations for the invoice directory.
type InvoiceReader interface {
	// FindInvoices retrieves all committed invoices in stored order
	// (newest first; commits prepend).
	FindInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for the invoice directory.
type InvoiceWriter interface {
	// SaveInvoices replaces the whole directory.
	SaveInvoices(ctx context.Context, invoices []domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// DraftReader defines read operations for in-progress invoice drafts.
type DraftReader interface {
	FindDrafts(ctx context.Context) ([]domain.InvoiceDraft, error)
}

// DraftWriter defines write operations for in-progress invoice drafts.
type DraftWriter interface {
	SaveDrafts(ctx context.Context, drafts []domain.InvoiceDraft) error
}

// DraftRepositoryFacade combines all draft repository interfaces.
type DraftRepositoryFacade interface {
	DraftReader
	DraftWriter
}
