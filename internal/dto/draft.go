package dto

import (
	"time"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// UpdateDraftRequest merges header fields into a draft. Nil fields are
// left untouched; last write wins.
type UpdateDraftRequest struct {
	InvoiceNumber *string `json:"invoiceNumber"`
	InvoiceName   *string `json:"invoiceName"`
	ProjectID     *string `json:"projectId"`
}

// UpdateMacroRequest merges fields into a macro line.
type UpdateMacroRequest struct {
	CostCodeID  *string `json:"costCodeId"`
	Description *string `json:"description"`
}

// ToMacroLinePatch converts the request into a domain patch.
func (r UpdateMacroRequest) ToMacroLinePatch() domain.MacroLinePatch {
	return domain.MacroLinePatch{
		CostCodeID:  r.CostCodeID,
		Description: r.Description,
	}
}

// UpdateItemRequest merges fields into a line item. Qty and UnitPrice are
// free-form numeric text; malformed values coerce to zero in totals.
type UpdateItemRequest struct {
	Name      *string `json:"name"`
	Qty       *string `json:"qty"`
	Unit      *string `json:"unit"`
	UnitPrice *string `json:"unitPrice"`
}

// ToLineItemPatch converts the request into a domain patch.
func (r UpdateItemRequest) ToLineItemPatch() domain.LineItemPatch {
	return domain.LineItemPatch{
		Name:      r.Name,
		Qty:       r.Qty,
		Unit:      r.Unit,
		UnitPrice: r.UnitPrice,
	}
}

// LineItemResponse defines the data returned for a line item, including
// its derived total.
type LineItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Qty       string `json:"qty"`
	Unit      string `json:"unit"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// MacroLineResponse defines the data returned for a macro line, including
// its derived total.
type MacroLineResponse struct {
	ID          string             `json:"id"`
	CostCodeID  string             `json:"costCodeId"`
	Description string             `json:"description"`
	Items       []LineItemResponse `json:"items"`
	MacroTotal  string             `json:"macroTotal"`
}

// DraftResponse defines the data returned for an invoice draft.
type DraftResponse struct {
	ID            string              `json:"id"`
	InvoiceNumber string              `json:"invoiceNumber"`
	InvoiceName   string              `json:"invoiceName"`
	ProjectID     string              `json:"projectId"`
	Macros        []MacroLineResponse `json:"macros"`
	Total         string              `json:"total"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// TotalsResponse defines the data returned for recomputed totals.
type TotalsResponse struct {
	PerItem  map[string]string `json:"perItem"`
	PerMacro map[string]string `json:"perMacro"`
	Grand    string            `json:"grand"`
}

// ToMacroLineResponses converts macro lines along with their derived
// totals into DTOs. Totals are recomputed here, never read from storage.
func ToMacroLineResponses(macros []domain.MacroLine) []MacroLineResponse {
	res := make([]MacroLineResponse, len(macros))
	for i, m := range macros {
		items := make([]LineItemResponse, len(m.Items))
		for j, it := range m.Items {
			items[j] = LineItemResponse{
				ID:        it.LineItemID,
				Name:      it.Name,
				Qty:       it.Qty,
				Unit:      it.Unit,
				UnitPrice: it.UnitPrice,
				LineTotal: it.LineTotal().String(),
			}
		}
		res[i] = MacroLineResponse{
			ID:          m.MacroLineID,
			CostCodeID:  m.CostCodeID,
			Description: m.Description,
			Items:       items,
			MacroTotal:  m.MacroTotal().String(),
		}
	}
	return res
}

// ToDraftResponse converts a domain.InvoiceDraft to DraftResponse DTO.
func ToDraftResponse(d *domain.InvoiceDraft) DraftResponse {
	return DraftResponse{
		ID:            d.DraftID,
		InvoiceNumber: d.InvoiceNumber,
		InvoiceName:   d.InvoiceName,
		ProjectID:     d.ProjectID,
		Macros:        ToMacroLineResponses(d.Macros),
		Total:         domain.ComputeTotals(d.Macros).Grand.String(),
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToListDraftResponse converts a slice of drafts to DTOs.
func ToListDraftResponse(drafts []domain.InvoiceDraft) []DraftResponse {
	res := make([]DraftResponse, len(drafts))
	for i, d := range drafts {
		res[i] = ToDraftResponse(&d)
	}
	return res
}

// ToTotalsResponse converts domain totals into their string form.
func ToTotalsResponse(t *domain.InvoiceTotals) TotalsResponse {
	res := TotalsResponse{
		PerItem:  make(map[string]string, len(t.PerItem)),
		PerMacro: make(map[string]string, len(t.PerMacro)),
		Grand:    t.Grand.String(),
	}
	for id, v := range t.PerItem {
		res.PerItem[id] = v.String()
	}
	for id, v := range t.PerMacro {
		res.PerMacro[id] = v.String()
	}
	return res
}
