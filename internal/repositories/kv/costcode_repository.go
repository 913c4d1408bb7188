package kv

import (
	"context"
	"fmt"

	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
)

// CostCodeRepository persists the catalog aggregate under its fixed key.
type CostCodeRepository struct {
	store portsrepo.KVStore
}

func newCostCodeRepository(store portsrepo.KVStore) portsrepo.CostCodeRepositoryFacade {
	return &CostCodeRepository{store: store}
}

var _ portsrepo.CostCodeRepositoryFacade = (*CostCodeRepository)(nil)

// FindCostCodes retrieves the whole catalog; an absent key is an empty
// catalog.
func (r *CostCodeRepository) FindCostCodes(ctx context.Context) ([]domain.CostCode, error) {
	costCodes := []domain.CostCode{}
	if _, err := r.store.Load(ctx, portsrepo.KeyCostCodes, &costCodes); err != nil {
		return nil, fmt.Errorf("failed to load cost codes: %w", err)
	}
	return costCodes, nil
}

// SaveCostCodes replaces the whole catalog.
func (r *CostCodeRepository) SaveCostCodes(ctx context.Context, costCodes []domain.CostCode) error {
	if err := r.store.Save(ctx, portsrepo.KeyCostCodes, costCodes); err != nil {
		return fmt.Errorf("failed to save cost codes: %w", err)
	}
	return nil
}
