package dto

import (
	"time"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// CreateProjectRequest defines the data needed to create a project.
type CreateProjectRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ProjectID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

// ToListProjectResponse converts a slice of domain.Project to DTOs.
func ToListProjectResponse(projects []domain.Project) []ProjectResponse {
	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = ToProjectResponse(&p)
	}
	return res
}
