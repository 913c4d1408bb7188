package dto

import (
	"time"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// InvoiceResponse defines the full data returned for a committed invoice.
// All totals are derived on conversion.
type InvoiceResponse struct {
	ID            string              `json:"id"`
	InvoiceNumber string              `json:"invoiceNumber"`
	InvoiceName   string              `json:"invoiceName"`
	ProjectID     string              `json:"projectId"`
	CreatedAt     time.Time           `json:"createdAt"`
	Macros        []MacroLineResponse `json:"macros"`
	Total         string              `json:"total"`
}

// InvoiceSummaryResponse defines the directory-listing row for an invoice.
type InvoiceSummaryResponse struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	InvoiceName   string    `json:"invoiceName"`
	ProjectID     string    `json:"projectId"`
	CreatedAt     time.Time `json:"createdAt"`
	Total         string    `json:"total"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceName:   inv.InvoiceName,
		ProjectID:     inv.ProjectID,
		CreatedAt:     inv.CreatedAt,
		Macros:        ToMacroLineResponses(inv.Macros),
		Total:         inv.Total().String(),
	}
}

// ToInvoiceSummaryResponse converts a domain.Invoice to its listing row.
func ToInvoiceSummaryResponse(inv *domain.Invoice) InvoiceSummaryResponse {
	return InvoiceSummaryResponse{
		ID:            inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceName:   inv.InvoiceName,
		ProjectID:     inv.ProjectID,
		CreatedAt:     inv.CreatedAt,
		Total:         inv.Total().String(),
	}
}

// ToListInvoiceSummaryResponse converts a slice of invoices to listing
// rows, preserving order.
func ToListInvoiceSummaryResponse(invoices []domain.Invoice) []InvoiceSummaryResponse {
	res := make([]InvoiceSummaryResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceSummaryResponse(&inv)
	}
	return res
}
