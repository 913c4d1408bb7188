package dto

import (
	"time"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// CreateCostCodeRequest defines the data needed to create a catalog entry.
type CreateCostCodeRequest struct {
	Code  string `json:"code" binding:"required,notblank"`
	Title string `json:"title" binding:"required,notblank"`
}

// UpdateCostCodeRequest defines the data needed to edit a catalog entry.
type UpdateCostCodeRequest struct {
	Code  string `json:"code" binding:"required,notblank"`
	Title string `json:"title" binding:"required,notblank"`
}

// CostCodeResponse defines the data returned for a catalog entry.
type CostCodeResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCostCodeResponse converts a domain.CostCode to CostCodeResponse DTO.
func ToCostCodeResponse(cc *domain.CostCode) CostCodeResponse {
	return CostCodeResponse{
		ID:            cc.CostCodeID,
		Code:          cc.Code,
		Title:         cc.Title,
		CreatedAt:     cc.CreatedAt,
		LastUpdatedAt: cc.LastUpdatedAt,
	}
}

// ToListCostCodeResponse converts a slice of domain.CostCode to DTOs.
func ToListCostCodeResponse(costCodes []domain.CostCode) []CostCodeResponse {
	res := make([]CostCodeResponse, len(costCodes))
	for i, cc := range costCodes {
		res[i] = ToCostCodeResponse(&cc)
	}
	return res
}
