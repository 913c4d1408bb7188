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

// companyHandler handles HTTP requests related to the company profile.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{
		companyService: cs,
	}
}

// registerCompanyRoutes registers routes related to the company profile.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	company := rg.Group("/company")
	{
		company.GET("", h.getCompany)
		company.PUT("", h.saveCompany)
	}
}

// getCompany godoc
// @Summary Get the company profile
// @Tags company
// @Produce  json
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Profile not set up yet"
// @Failure 500 {object} map[string]string "Failed to get company profile"
// @Router /company [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	company, err := h.companyService.GetCompany(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company profile not set up yet"})
		} else {
			logger.Error("Failed to get company profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get company profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// saveCompany godoc
// @Summary Create or replace the company profile
// @Tags company
// @Accept  json
// @Produce  json
// @Param   company body dto.SaveCompanyRequest true "Company details"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save company profile"
// @Router /company [put]
func (h *companyHandler) saveCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	saved, err := h.companyService.SaveCompany(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save company profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save company profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(saved))
}
