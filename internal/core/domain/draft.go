package domain

import (
	"fmt"
	"strings"

	"github.com/costbook/costbook_app/internal/apperrors"
	"github.com/google/uuid"
)

// InvoiceDraft is an uncommitted, mutable invoice-in-progress. A draft may
// violate commit invariants (zero macros, empty item names); Validate gates
// the commit and committed invoices may not violate them.
type InvoiceDraft struct {
	DraftID       string      `json:"id"`
	InvoiceNumber string      `json:"invoiceNumber"`
	InvoiceName   string      `json:"invoiceName"`
	ProjectID     string      `json:"projectId"`
	Macros        []MacroLine `json:"macros"`
	AuditFields
}

// NewLineItem returns an empty seeded item, matching the defaults the
// invoice editor starts every row with.
func NewLineItem() LineItem {
	return LineItem{
		LineItemID: uuid.NewString(),
		Name:       "",
		Qty:        "1",
		Unit:       "EA",
		UnitPrice:  "0",
	}
}

// NewMacroLine returns a macro seeded with one empty item.
func NewMacroLine(costCodeID string) MacroLine {
	return MacroLine{
		MacroLineID: uuid.NewString(),
		CostCodeID:  costCodeID,
		Description: "",
		Items:       []LineItem{NewLineItem()},
	}
}

// AddMacro appends a seeded macro line and returns it.
func (d *InvoiceDraft) AddMacro(costCodeID string) MacroLine {
	m := NewMacroLine(costCodeID)
	d.Macros = append(d.Macros, m)
	return m
}

// RemoveMacro removes the macro with the given id. Removal is
// unconditional; the draft may transiently hold zero macros.
func (d *InvoiceDraft) RemoveMacro(macroID string) {
	kept := d.Macros[:0]
	for _, m := range d.Macros {
		if m.MacroLineID != macroID {
			kept = append(kept, m)
		}
	}
	d.Macros = kept
}

// AddItem appends a seeded item to the given macro.
func (d *InvoiceDraft) AddItem(macroID string) (LineItem, error) {
	for i := range d.Macros {
		if d.Macros[i].MacroLineID == macroID {
			it := NewLineItem()
			d.Macros[i].Items = append(d.Macros[i].Items, it)
			return it, nil
		}
	}
	return LineItem{}, fmt.Errorf("macro %s: %w", macroID, apperrors.ErrNotFound)
}

// RemoveItem removes an item from a macro. A macro may be reduced to zero
// items transiently; commit rejects it.
func (d *InvoiceDraft) RemoveItem(macroID, itemID string) error {
	for i := range d.Macros {
		if d.Macros[i].MacroLineID != macroID {
			continue
		}
		kept := d.Macros[i].Items[:0]
		for _, it := range d.Macros[i].Items {
			if it.LineItemID != itemID {
				kept = append(kept, it)
			}
		}
		d.Macros[i].Items = kept
		return nil
	}
	return fmt.Errorf("macro %s: %w", macroID, apperrors.ErrNotFound)
}

// MacroLinePatch is a partial update of a macro line; nil fields are left
// untouched. Last write wins, no history.
type MacroLinePatch struct {
	CostCodeID  *string
	Description *string
}

// LineItemPatch is a partial update of a line item; nil fields are left
// untouched.
type LineItemPatch struct {
	Name      *string
	Qty       *string
	Unit      *string
	UnitPrice *string
}

// UpdateMacro merges the patch into the macro with the given id.
func (d *InvoiceDraft) UpdateMacro(macroID string, patch MacroLinePatch) error {
	for i := range d.Macros {
		if d.Macros[i].MacroLineID != macroID {
			continue
		}
		if patch.CostCodeID != nil {
			d.Macros[i].CostCodeID = *patch.CostCodeID
		}
		if patch.Description != nil {
			d.Macros[i].Description = *patch.Description
		}
		return nil
	}
	return fmt.Errorf("macro %s: %w", macroID, apperrors.ErrNotFound)
}

// UpdateItem merges the patch into the given item of the given macro.
func (d *InvoiceDraft) UpdateItem(macroID, itemID string, patch LineItemPatch) error {
	for i := range d.Macros {
		if d.Macros[i].MacroLineID != macroID {
			continue
		}
		for j := range d.Macros[i].Items {
			if d.Macros[i].Items[j].LineItemID != itemID {
				continue
			}
			it := &d.Macros[i].Items[j]
			if patch.Name != nil {
				it.Name = *patch.Name
			}
			if patch.Qty != nil {
				it.Qty = *patch.Qty
			}
			if patch.Unit != nil {
				it.Unit = *patch.Unit
			}
			if patch.UnitPrice != nil {
				it.UnitPrice = *patch.UnitPrice
			}
			return nil
		}
		return fmt.Errorf("item %s: %w", itemID, apperrors.ErrNotFound)
	}
	return fmt.Errorf("macro %s: %w", macroID, apperrors.ErrNotFound)
}

// ProjectExistsFunc reports whether a project id resolves to a known
// project. The project catalog is an external collaborator of the draft.
type ProjectExistsFunc func(projectID string) bool

// Validate checks the commit invariants in a fixed order and returns the
// first violation only; it never aggregates multiple failures. A nil
// return means the draft is committable.
//
// Order: invoice number, invoice name, project set and resolvable, catalog
// non-empty, every macro carries an existing cost code, every macro has at
// least one item, every item has a name.
func (d *InvoiceDraft) Validate(catalog []CostCode, projectExists ProjectExistsFunc) error {
	if strings.TrimSpace(d.InvoiceNumber) == "" {
		return fmt.Errorf("%w: invoice number is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(d.InvoiceName) == "" {
		return fmt.Errorf("%w: invoice name is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(d.ProjectID) == "" {
		return fmt.Errorf("%w: a project is required", apperrors.ErrValidation)
	}
	if projectExists != nil && !projectExists(d.ProjectID) {
		return fmt.Errorf("%w: project %q does not exist", apperrors.ErrUnresolvedReference, d.ProjectID)
	}
	if len(catalog) == 0 {
		return fmt.Errorf("%w: create cost codes before committing an invoice", apperrors.ErrValidation)
	}
	byID := make(map[string]struct{}, len(catalog))
	for _, cc := range catalog {
		byID[cc.CostCodeID] = struct{}{}
	}
	if len(d.Macros) == 0 {
		return fmt.Errorf("%w: an invoice needs at least one macro line", apperrors.ErrValidation)
	}
	for _, m := range d.Macros {
		if m.CostCodeID == "" {
			return fmt.Errorf("%w: select a cost code on every macro line", apperrors.ErrValidation)
		}
		if _, ok := byID[m.CostCodeID]; !ok {
			// The catalog may have changed while the draft was edited; a
			// stale reference is a validation failure, not a silent drop.
			return fmt.Errorf("%w: cost code %q no longer exists", apperrors.ErrUnresolvedReference, m.CostCodeID)
		}
		if len(m.Items) == 0 {
			return fmt.Errorf("%w: every macro line needs at least one item", apperrors.ErrValidation)
		}
		for _, it := range m.Items {
			if strings.TrimSpace(it.Name) == "" {
				return fmt.Errorf("%w: every item needs a name", apperrors.ErrValidation)
			}
		}
	}
	return nil
}
