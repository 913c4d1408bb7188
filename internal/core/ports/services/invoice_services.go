package services

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceSvcFacade defines the service contract for the directory of
// committed invoices. Committed invoices can be listed, searched, printed
// and deleted, never edited in place.
type InvoiceSvcFacade interface {
	// ListInvoices returns the directory in insertion order, newest
	// first.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// SearchInvoices filters by case-insensitive substring match against
	// invoice number or invoice name. An empty query returns the full
	// directory unfiltered, order preserved.
	SearchInvoices(ctx context.Context, query string) ([]domain.Invoice, error)

	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice after the injected Confirmer
	// approves. Denial leaves the directory untouched.
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// TotalOf recomputes the invoice total through the shared totals
	// logic; totals are never persisted.
	TotalOf(invoice domain.Invoice) decimal.Decimal

	// RenderInvoice produces the self-contained printable HTML document
	// for an invoice, resolving cost codes and the project name.
	RenderInvoice(ctx context.Context, invoiceID string) ([]byte, error)
}
