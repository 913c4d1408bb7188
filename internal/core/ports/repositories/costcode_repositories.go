package repositories

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// CostCodeReader defines read operations for the cost-code catalog.
type CostCodeReader interface {
	// FindCostCodes retrieves the whole catalog in stored order.
	FindCostCodes(ctx context.Context) ([]domain.CostCode, error)
}

// CostCodeWriter defines write operations for the cost-code catalog.
type CostCodeWriter interface {
	// SaveCostCodes replaces the whole catalog.
	SaveCostCodes(ctx context.Context, costCodes []domain.CostCode) error
}

// CostCodeRepositoryFacade combines all cost-code repository interfaces.
type CostCodeRepositoryFacade interface {
	CostCodeReader
	CostCodeWriter
}
