// Package render builds the printable HTML document for a committed
// invoice. Rendering is pure: every input is passed in and totals are
// recomputed, never read from the store.
package render

import (
	"time"

	"github.com/costbook/costbook_app/internal/core/domain"
	"github.com/costbook/costbook_app/internal/utils"
)

// FallbackCostCodeLabel replaces the section heading when the referenced
// cost code no longer exists in the catalog.
const FallbackCostCodeLabel = "—"

// CompanyBlock is the letterhead printed at the top of the document.
type CompanyBlock struct {
	Name    string
	Email   string
	Phone   string
	Address string
	LogoURL string
}

// ItemRow is one rendered line item with its formatted line total.
type ItemRow struct {
	Name      string
	Qty       string
	Unit      string
	UnitPrice string
	LineTotal string
}

// MacroSection is one rendered macro line. CostCodeLabel joins code and
// title, or is the fallback label when the code is gone.
type MacroSection struct {
	CostCodeLabel string
	Description   string
	Rows          []ItemRow
	MacroTotal    string
}

// Document is the fully resolved, formatted model the HTML template
// consumes.
type Document struct {
	InvoiceNumber string
	InvoiceName   string
	ProjectName   string
	CreatedAt     time.Time
	Company       *CompanyBlock
	Sections      []MacroSection
	GrandTotal    string
}

// BuildDocument resolves cost codes and formats every monetary value for
// the given invoice. projectName is resolved by the caller; company may be
// nil when no profile has been saved.
func BuildDocument(inv domain.Invoice, catalog []domain.CostCode, projectName string, company *domain.Company) Document {
	labels := make(map[string]string, len(catalog))
	for _, cc := range catalog {
		labels[cc.CostCodeID] = cc.Code + " — " + cc.Title
	}

	totals := domain.ComputeTotals(inv.Macros)

	sections := make([]MacroSection, 0, len(inv.Macros))
	for _, m := range inv.Macros {
		label, ok := labels[m.CostCodeID]
		if !ok {
			label = FallbackCostCodeLabel
		}

		rows := make([]ItemRow, 0, len(m.Items))
		for _, it := range m.Items {
			rows = append(rows, ItemRow{
				Name:      it.Name,
				Qty:       it.Qty,
				Unit:      it.Unit,
				UnitPrice: utils.FormatUSD(domain.CoerceAmount(it.UnitPrice)),
				LineTotal: utils.FormatUSD(totals.PerItem[it.LineItemID]),
			})
		}

		sections = append(sections, MacroSection{
			CostCodeLabel: label,
			Description:   m.Description,
			Rows:          rows,
			MacroTotal:    utils.FormatUSD(totals.PerMacro[m.MacroLineID]),
		})
	}

	doc := Document{
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceName:   inv.InvoiceName,
		ProjectName:   projectName,
		CreatedAt:     inv.CreatedAt,
		Sections:      sections,
		GrandTotal:    utils.FormatUSD(totals.Grand),
	}
	if company != nil {
		doc.Company = &CompanyBlock{
			Name:    company.Name,
			Email:   company.Email,
			Phone:   company.Phone,
			Address: company.Address,
			LogoURL: company.LogoURL,
		}
	}
	return doc
}
