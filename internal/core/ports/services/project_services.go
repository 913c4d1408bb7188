package services

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
	"github.com/costbook/costbook_app/internal/dto"
)

// ProjectSvcFacade defines the service contract for projects. Projects
// back the projectExists and projectLookup collaborators used by draft
// validation and invoice rendering.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error

	// ResolveProjectName returns the display name for a project id, or
	// ErrNotFound when the id does not resolve; callers fall back to the
	// raw id.
	ResolveProjectName(ctx context.Context, projectID string) (string, error)
}
