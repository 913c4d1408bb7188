package dto

import (
	"time"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a customer.
// A customer must reference at least one project.
type CreateCustomerRequest struct {
	Name        string   `json:"name" binding:"required,notblank"`
	CompanyName string   `json:"companyName"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required,notblank"`
	Address     string   `json:"address" binding:"required,notblank"`
	ProjectIDs  []string `json:"projectIds" binding:"required,min=1,dive,required"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"companyName,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	ProjectIDs  []string  `json:"projectIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.CustomerID,
		Name:        c.Name,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		ProjectIDs:  c.ProjectIDs,
		CreatedAt:   c.CreatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}
