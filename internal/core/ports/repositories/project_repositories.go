package repositories

import (
	"context"

	"github.com/costbook/costbook_app/internal/core/domain"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	FindProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	SaveProjects(ctx context.Context, projects []domain.Project) error
}

// ProjectRepositoryFacade combines all project repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
