package domain_test

import (
	"testing"

	"github.com/costbook/costbook_app/internal/apperrors"
	"github.com/costbook/costbook_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() *domain.InvoiceDraft {
	m := domain.NewMacroLine("cc-1")
	m.Items[0].Name = "Sheet"
	return &domain.InvoiceDraft{
		DraftID:       "d-1",
		InvoiceNumber: "INV-0001",
		InvoiceName:   "Phase 1",
		ProjectID:     "p1",
		Macros:        []domain.MacroLine{m},
	}
}

func testCatalog() []domain.CostCode {
	return []domain.CostCode{{CostCodeID: "cc-1", Code: "09 29 00", Title: "Gypsum Board"}}
}

func existingProjects(ids ...string) domain.ProjectExistsFunc {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(projectID string) bool {
		_, ok := set[projectID]
		return ok
	}
}

func TestDraft_AddRemoveMacro(t *testing.T) {
	d := validDraft()

	added := d.AddMacro("cc-1")
	require.Len(t, d.Macros, 2)
	assert.Equal(t, "cc-1", added.CostCodeID)
	require.Len(t, added.Items, 1)
	assert.Equal(t, "1", added.Items[0].Qty)
	assert.Equal(t, "EA", added.Items[0].Unit)

	// Removal is unconditional, down to zero macros.
	d.RemoveMacro(added.MacroLineID)
	d.RemoveMacro(d.Macros[0].MacroLineID)
	assert.Empty(t, d.Macros)
}

func TestDraft_AddRemoveItem(t *testing.T) {
	d := validDraft()
	macroID := d.Macros[0].MacroLineID

	added, err := d.AddItem(macroID)
	require.NoError(t, err)
	require.Len(t, d.Macros[0].Items, 2)

	_, err = d.AddItem("missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, d.RemoveItem(macroID, added.LineItemID))
	require.NoError(t, d.RemoveItem(macroID, d.Macros[0].Items[0].LineItemID))
	assert.Empty(t, d.Macros[0].Items, "macros may transiently hold zero items")

	assert.ErrorIs(t, d.RemoveItem("missing", "x"), apperrors.ErrNotFound)
}

func TestDraft_UpdateMacro_PartialMerge(t *testing.T) {
	d := validDraft()
	macroID := d.Macros[0].MacroLineID

	desc := "Drywall"
	require.NoError(t, d.UpdateMacro(macroID, domain.MacroLinePatch{Description: &desc}))
	assert.Equal(t, "Drywall", d.Macros[0].Description)
	assert.Equal(t, "cc-1", d.Macros[0].CostCodeID, "nil fields stay untouched")

	assert.ErrorIs(t, d.UpdateMacro("missing", domain.MacroLinePatch{}), apperrors.ErrNotFound)
}

func TestDraft_UpdateItem_PartialMerge(t *testing.T) {
	d := validDraft()
	macroID := d.Macros[0].MacroLineID
	itemID := d.Macros[0].Items[0].LineItemID

	qty := "10"
	price := "12.5"
	require.NoError(t, d.UpdateItem(macroID, itemID, domain.LineItemPatch{Qty: &qty, UnitPrice: &price}))
	assert.Equal(t, "10", d.Macros[0].Items[0].Qty)
	assert.Equal(t, "12.5", d.Macros[0].Items[0].UnitPrice)
	assert.Equal(t, "Sheet", d.Macros[0].Items[0].Name)

	assert.ErrorIs(t, d.UpdateItem(macroID, "missing", domain.LineItemPatch{}), apperrors.ErrNotFound)
}

func TestDraft_Validate_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *domain.InvoiceDraft)
		catalog []domain.CostCode
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing invoice number",
			mutate:  func(d *domain.InvoiceDraft) { d.InvoiceNumber = "  " },
			catalog: testCatalog(),
			wantErr: apperrors.ErrValidation,
			wantMsg: "invoice number",
		},
		{
			name:    "missing invoice name",
			mutate:  func(d *domain.InvoiceDraft) { d.InvoiceName = "" },
			catalog: testCatalog(),
			wantErr: apperrors.ErrValidation,
			wantMsg: "invoice name",
		},
		{
			name:    "missing project",
			mutate:  func(d *domain.InvoiceDraft) { d.ProjectID = "" },
			catalog: testCatalog(),
			wantErr: apperrors.ErrValidation,
			wantMsg: "project",
		},
		{
			name:    "unresolvable project",
			mutate:  func(d *domain.InvoiceDraft) { d.ProjectID = "ghost" },
			catalog: testCatalog(),
			wantErr: apperrors.ErrUnresolvedReference,
			wantMsg: "project",
		},
		{
			name:    "empty catalog",
			mutate:  func(d *domain.InvoiceDraft) {},
			catalog: nil,
			wantErr: apperrors.ErrValidation,
			wantMsg: "cost codes",
		},
		{
			name:    "zero macros",
			mutate:  func(d *domain.InvoiceDraft) { d.Macros = nil },
			catalog: testCatalog(),
			wantErr: apperrors.ErrValidation,
			wantMsg: "macro line",
		},
		{
			name:    "macro without cost code",
			mutate:  func(d *domain.InvoiceDraft) { d.Macros[0].CostCodeID = "" },
			catalog: testCatalog(),
			wantErr: apperrors.ErrValidation,
			wantMsg: "cost code",
		},
		{
			name:    "stale cost code reference",
			mutate:  func(d *domain.InvoiceDraft) { d.Macros[0].CostCodeID = "deleted" },
			catalog: testCatalog(),
			wantErr: apperrors.ErrUnresolvedReference,
			wantMsg: "no longer exists",
		},
		{
			name:    "macro without items",
			mutate:  func(d *domain.InvoiceDraft) { d.Macros[0].Items = nil },
			catalog: testCatalog(),
			wantErr: apperrors.ErrValidation,
			wantMsg: "at least one item",
		},
		{
			name:    "item without name",
			mutate:  func(d *domain.InvoiceDraft) { d.Macros[0].Items[0].Name = "   " },
			catalog: testCatalog(),
			wantErr: apperrors.ErrValidation,
			wantMsg: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)
			err := d.Validate(tt.catalog, existingProjects("p1"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDraft_Validate_OK(t *testing.T) {
	d := validDraft()
	assert.NoError(t, d.Validate(testCatalog(), existingProjects("p1")))
}
