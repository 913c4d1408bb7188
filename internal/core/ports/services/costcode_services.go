package services

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
	"github.com/costbook/costbook_app/internal/dto"
)

// CostCodeSvcFacade defines the service contract for the cost-code
// catalog.
type CostCodeSvcFacade interface {
	// CreateCostCode adds a catalog entry. Inputs are trimmed; an empty
	// code or title fails validation and a case-insensitive duplicate
	// code fails with ErrDuplicate. New entries are prepended.
	CreateCostCode(ctx context.Context, req dto.CreateCostCodeRequest) (*domain.CostCode, error)

	// UpdateCostCode edits an entry under the same trim/empty/duplicate
	// rules; the duplicate check excludes the entry being edited.
	UpdateCostCode(ctx context.Context, costCodeID string, req dto.UpdateCostCodeRequest) (*domain.CostCode, error)

	// DeleteCostCode removes an entry unconditionally. Invoices keep any
	// dangling reference; it renders as a fallback label.
	DeleteCostCode(ctx context.Context, costCodeID string) error

	// ListCostCodes returns the catalog sorted by code ascending. The
	// sort is applied at read time, not stored order.
	ListCostCodes(ctx context.Context) ([]domain.CostCode, error)
}
