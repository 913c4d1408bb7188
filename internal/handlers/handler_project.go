package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/costbook/costbook_app/internal/apperrors"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/dto"
	"github.com/costbook/costbook_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{
		projectService: ps,
	}
}

// registerProjectRoutes registers routes related to projects.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.DELETE("/:id", h.deleteProject)
	}
}

// createProject godoc
// @Summary Create a new project
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create project", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(created))
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce  json
// @Success 200 {array} dto.ProjectResponse
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list projects", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectResponse(projects))
}

// deleteProject godoc
// @Summary Delete a project
// @Description No cascade; drafts referencing the project fail commit until repointed
// @Tags projects
// @Param   id path string true "Project ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to delete project"
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to delete project", slog.String("error", err.Error()), slog.String("project_id", projectID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
