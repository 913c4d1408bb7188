package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/costbook/costbook_app/internal/apperrors"
	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/dto"
	"github.com/google/uuid"
)

// costCodeService implements the CostCodeSvcFacade interface
type costCodeService struct {
	BaseService
	costCodeRepo portsrepo.CostCodeRepositoryFacade
	confirmer    portssvc.Confirmer
}

// CostCodeServiceOption is a functional option for configuring the
// cost-code service
type CostCodeServiceOption func(*costCodeService)

// WithCostCodeConfirmer replaces the confirmation capability used before
// destructive operations
func WithCostCodeConfirmer(c portssvc.Confirmer) CostCodeServiceOption {
	return func(s *costCodeService) {
		s.confirmer = c
	}
}

// NewCostCodeService creates a new cost-code catalog service
func NewCostCodeService(repo portsrepo.CostCodeRepositoryFacade, options ...CostCodeServiceOption) portssvc.CostCodeSvcFacade {
	svc := &costCodeService{
		costCodeRepo: repo,
		confirmer:    AutoConfirm{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure costCodeService implements the CostCodeSvcFacade interface
var _ portssvc.CostCodeSvcFacade = (*costCodeService)(nil)

func (s *costCodeService) CreateCostCode(ctx context.Context, req dto.CreateCostCodeRequest) (*domain.CostCode, error) {
	code := strings.TrimSpace(req.Code)
	title := strings.TrimSpace(req.Title)
	if code == "" || title == "" {
		return nil, fmt.Errorf("%w: code and title are required", apperrors.ErrValidation)
	}

	costCodes, err := s.costCodeRepo.FindCostCodes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cost codes")
		return nil, err
	}

	if findByCode(costCodes, code, "") != nil {
		return nil, fmt.Errorf("cost code %q: %w", code, apperrors.ErrDuplicate)
	}

	now := time.Now()
	costCode := domain.CostCode{
		CostCodeID: uuid.NewString(),
		Code:       code,
		Title:      title,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// New entries are prepended; List sorts by code at read time.
	costCodes = append([]domain.CostCode{costCode}, costCodes...)
	if err := s.costCodeRepo.SaveCostCodes(ctx, costCodes); err != nil {
		s.LogError(ctx, err, "Failed to save cost codes",
			slog.String("cost_code_id", costCode.CostCodeID))
		return nil, err
	}

	s.LogInfo(ctx, "Cost code created",
		slog.String("cost_code_id", costCode.CostCodeID),
		slog.String("code", costCode.Code))
	return &costCode, nil
}

func (s *costCodeService) UpdateCostCode(ctx context.Context, costCodeID string, req dto.UpdateCostCodeRequest) (*domain.CostCode, error) {
	code := strings.TrimSpace(req.Code)
	title := strings.TrimSpace(req.Title)
	if code == "" || title == "" {
		return nil, fmt.Errorf("%w: code and title are required", apperrors.ErrValidation)
	}

	costCodes, err := s.costCodeRepo.FindCostCodes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cost codes")
		return nil, err
	}

	idx := -1
	for i := range costCodes {
		if costCodes[i].CostCodeID == costCodeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("cost code %s: %w", costCodeID, apperrors.ErrNotFound)
	}

	// The duplicate check excludes the row being edited.
	if findByCode(costCodes, code, costCodeID) != nil {
		return nil, fmt.Errorf("cost code %q: %w", code, apperrors.ErrDuplicate)
	}

	costCodes[idx].Code = code
	costCodes[idx].Title = title
	costCodes[idx].LastUpdatedAt = time.Now()

	if err := s.costCodeRepo.SaveCostCodes(ctx, costCodes); err != nil {
		s.LogError(ctx, err, "Failed to save cost codes",
			slog.String("cost_code_id", costCodeID))
		return nil, err
	}

	updated := costCodes[idx]
	s.LogInfo(ctx, "Cost code updated", slog.String("cost_code_id", costCodeID))
	return &updated, nil
}

func (s *costCodeService) DeleteCostCode(ctx context.Context, costCodeID string) error {
	if !s.confirmer.Confirm(ctx, "Remove this cost code?") {
		s.LogDebug(ctx, "Cost code deletion not confirmed",
			slog.String("cost_code_id", costCodeID))
		return nil
	}

	costCodes, err := s.costCodeRepo.FindCostCodes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cost codes")
		return err
	}

	// Removal is unconditional and does not cascade: invoices keep any
	// reference to the deleted code and render it with a fallback label.
	kept := costCodes[:0]
	for _, cc := range costCodes {
		if cc.CostCodeID != costCodeID {
			kept = append(kept, cc)
		}
	}
	if len(kept) == len(costCodes) {
		return fmt.Errorf("cost code %s: %w", costCodeID, apperrors.ErrNotFound)
	}

	if err := s.costCodeRepo.SaveCostCodes(ctx, kept); err != nil {
		s.LogError(ctx, err, "Failed to save cost codes",
			slog.String("cost_code_id", costCodeID))
		return err
	}

	s.LogInfo(ctx, "Cost code deleted", slog.String("cost_code_id", costCodeID))
	return nil
}

func (s *costCodeService) ListCostCodes(ctx context.Context) ([]domain.CostCode, error) {
	costCodes, err := s.costCodeRepo.FindCostCodes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cost codes")
		return nil, err
	}

	// The sort is applied at read time; stored order stays newest-first.
	sort.SliceStable(costCodes, func(i, j int) bool {
		return costCodes[i].Code < costCodes[j].Code
	})

	if costCodes == nil {
		return []domain.CostCode{}, nil
	}
	return costCodes, nil
}

// findByCode returns the catalog entry whose code matches
// case-insensitively, skipping excludeID, or nil.
func findByCode(costCodes []domain.CostCode, code, excludeID string) *domain.CostCode {
	for i := range costCodes {
		if costCodes[i].CostCodeID == excludeID {
			continue
		}
		if strings.EqualFold(costCodes[i].Code, code) {
			return &costCodes[i]
		}
	}
	return nil
}
