package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/costbook/costbook_app/internal/apperrors"
	"github.com/costbook/costbook_app/internal/core/domain"
	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/dto"
	"github.com/google/uuid"
)

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service
func NewProjectService(repo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: repo}
}

// Ensure projectService implements the ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
	}

	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load projects")
		return nil, err
	}

	now := time.Now()
	project := domain.Project{
		ProjectID: uuid.NewString(),
		Name:      name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	projects = append([]domain.Project{project}, projects...)
	if err := s.projectRepo.SaveProjects(ctx, projects); err != nil {
		s.LogError(ctx, err, "Failed to save projects",
			slog.String("project_id", project.ProjectID))
		return nil, err
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load projects")
		return nil, err
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectService) DeleteProject(ctx context.Context, projectID string) error {
	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load projects")
		return err
	}

	// No cascade: invoices and customers keep the dangling id, drafts
	// referencing it fail commit until repointed.
	kept := projects[:0]
	for _, p := range projects {
		if p.ProjectID != projectID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
	}

	if err := s.projectRepo.SaveProjects(ctx, kept); err != nil {
		s.LogError(ctx, err, "Failed to save projects",
			slog.String("project_id", projectID))
		return err
	}

	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}

func (s *projectService) ResolveProjectName(ctx context.Context, projectID string) (string, error) {
	projects, err := s.projectRepo.FindProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load projects")
		return "", err
	}
	for _, p := range projects {
		if p.ProjectID == projectID {
			return p.Name, nil
		}
	}
	return "", fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
}
