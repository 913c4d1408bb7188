package dto

import (
	"time"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// SaveCompanyRequest defines the data needed to create or replace the
// singleton company profile.
type SaveCompanyRequest struct {
	Name    string `json:"name" binding:"required,notblank"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,notblank"`
	Address string `json:"address" binding:"required,notblank"`
	LogoURL string `json:"logoUrl"`
}

// CompanyResponse defines the data returned for the company profile.
type CompanyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	LogoURL       string    `json:"logoUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.CompanyID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		LogoURL:       c.LogoURL,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}
