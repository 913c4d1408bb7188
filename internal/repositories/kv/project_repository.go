package kv

import (
	"context"
	"fmt"

	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
)

// ProjectRepository persists the project list under its fixed key.
type ProjectRepository struct {
	store portsrepo.KVStore
}

func newProjectRepository(store portsrepo.KVStore) portsrepo.ProjectRepositoryFacade {
	return &ProjectRepository{store: store}
}

var _ portsrepo.ProjectRepositoryFacade = (*ProjectRepository)(nil)

func (r *ProjectRepository) FindProjects(ctx context.Context) ([]domain.Project, error) {
	projects := []domain.Project{}
	if _, err := r.store.Load(ctx, portsrepo.KeyProjects, &projects); err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) SaveProjects(ctx context.Context, projects []domain.Project) error {
	if err := r.store.Save(ctx, portsrepo.KeyProjects, projects); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}
