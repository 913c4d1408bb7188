package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is the smallest billable unit within a macro line.
// Qty and UnitPrice keep the raw user-entered numeric text; parsing
// happens when totals are computed, and malformed input counts as zero.
type LineItem struct {
	LineItemID string `json:"id"`
	Name       string `json:"name"`
	Qty        string `json:"qty"`
	Unit       string `json:"unit"` // Unit of measure, e.g. "EA", "SF"
	UnitPrice  string `json:"unitPrice"`
}

// MacroLine is an invoice section tagged with one cost code, grouping one
// or more line items. Item order is insertion order and significant for
// display.
type MacroLine struct {
	MacroLineID string     `json:"id"`
	CostCodeID  string     `json:"costCodeId"` // References CostCode.CostCodeID
	Description string     `json:"description"`
	Items       []LineItem `json:"items"`
}

// Invoice is a committed invoice. It is immutable once committed; the
// directory supports delete, not edit. Totals are always derived, never
// stored, so they are recomputed on every read.
type Invoice struct {
	InvoiceID     string      `json:"id"`
	InvoiceNumber string      `json:"invoiceNumber"` // Search key, not required unique
	InvoiceName   string      `json:"invoiceName"`
	ProjectID     string      `json:"projectId"` // References an external Project
	CreatedAt     time.Time   `json:"createdAt"` // Stamped once at commit
	Macros        []MacroLine `json:"macros"`
}

// CoerceAmount parses user-entered numeric text into a decimal.
// Malformed input coerces to zero rather than failing; this is the
// forgiving-input policy for qty/price fields.
func CoerceAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// LineTotal returns qty * unitPrice for this item.
func (it LineItem) LineTotal() decimal.Decimal {
	return CoerceAmount(it.Qty).Mul(CoerceAmount(it.UnitPrice))
}

// MacroTotal returns the sum of the line totals of all items.
func (m MacroLine) MacroTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range m.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// Total returns the grand total over all macro lines.
func (inv Invoice) Total() decimal.Decimal {
	return ComputeTotals(inv.Macros).Grand
}

// InvoiceTotals carries the derived totals at item, macro and invoice
// granularity, keyed by the respective entity IDs.
type InvoiceTotals struct {
	PerItem  map[string]decimal.Decimal `json:"perItem"`
	PerMacro map[string]decimal.Decimal `json:"perMacro"`
	Grand    decimal.Decimal            `json:"grand"`
}

// ComputeTotals derives all totals for a sequence of macro lines. It is a
// pure function shared by drafts, the directory and the renderer so that a
// total can never drift from its line items.
func ComputeTotals(macros []MacroLine) InvoiceTotals {
	totals := InvoiceTotals{
		PerItem:  make(map[string]decimal.Decimal),
		PerMacro: make(map[string]decimal.Decimal),
		Grand:    decimal.Zero,
	}
	for _, m := range macros {
		macroTotal := decimal.Zero
		for _, it := range m.Items {
			lineTotal := it.LineTotal()
			totals.PerItem[it.LineItemID] = lineTotal
			macroTotal = macroTotal.Add(lineTotal)
		}
		totals.PerMacro[m.MacroLineID] = macroTotal
		totals.Grand = totals.Grand.Add(macroTotal)
	}
	return totals
}
