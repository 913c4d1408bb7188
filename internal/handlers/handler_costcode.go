package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/costbook/costbook_app/internal/apperrors"
	portssvc "github.com/costbook/costbook_app/internal/core/ports/services"
	"github.com/costbook/costbook_app/internal/dto"
	"github.com/costbook/costbook_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// costCodeHandler handles HTTP requests related to the cost-code catalog.
type costCodeHandler struct {
	costCodeService portssvc.CostCodeSvcFacade
}

// newCostCodeHandler creates a new costCodeHandler.
func newCostCodeHandler(cs portssvc.CostCodeSvcFacade) *costCodeHandler {
	return &costCodeHandler{
		costCodeService: cs,
	}
}

// registerCostCodeRoutes registers routes related to the cost-code catalog.
func registerCostCodeRoutes(rg *gin.RouterGroup, costCodeService portssvc.CostCodeSvcFacade) {
	h := newCostCodeHandler(costCodeService)

	costCodes := rg.Group("/cost-codes")
	{
		costCodes.POST("", h.createCostCode)
		costCodes.GET("", h.listCostCodes)
		costCodes.PUT("/:id", h.updateCostCode)
		costCodes.DELETE("/:id", h.deleteCostCode)
	}
}

// createCostCode godoc
// @Summary Create a new cost code
// @Description Adds a catalog entry; codes must be unique ignoring case
// @Tags cost-codes
// @Accept  json
// @Produce  json
// @Param   costCode body dto.CreateCostCodeRequest true "Cost code details"
// @Success 201 {object} dto.CostCodeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Code already exists"
// @Failure 500 {object} map[string]string "Failed to create cost code"
// @Router /cost-codes [post]
func (h *costCodeHandler) createCostCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCostCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCostCode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.costCodeService.CreateCostCode(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate cost code", slog.String("code", req.Code))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Cost code '%s' already exists", req.Code)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating cost code", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create cost code in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cost code"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCostCodeResponse(created))
}

// listCostCodes godoc
// @Summary List cost codes
// @Description Returns the catalog sorted by code ascending
// @Tags cost-codes
// @Produce  json
// @Success 200 {array} dto.CostCodeResponse
// @Failure 500 {object} map[string]string "Failed to list cost codes"
// @Router /cost-codes [get]
func (h *costCodeHandler) listCostCodes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	costCodes, err := h.costCodeService.ListCostCodes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list cost codes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cost codes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCostCodeResponse(costCodes))
}

// updateCostCode godoc
// @Summary Update a cost code
// @Description Edits an entry; the duplicate check excludes the entry itself
// @Tags cost-codes
// @Accept  json
// @Produce  json
// @Param   id path string true "Cost code ID"
// @Param   costCode body dto.UpdateCostCodeRequest true "Updated details"
// @Success 200 {object} dto.CostCodeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Cost code not found"
// @Failure 409 {object} map[string]string "Code already exists"
// @Failure 500 {object} map[string]string "Failed to update cost code"
// @Router /cost-codes/{id} [put]
func (h *costCodeHandler) updateCostCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	costCodeID := c.Param("id")

	var req dto.UpdateCostCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCostCode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.costCodeService.UpdateCostCode(c.Request.Context(), costCodeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cost code not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Cost code '%s' already exists", req.Code)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update cost code", slog.String("error", err.Error()), slog.String("cost_code_id", costCodeID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cost code"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCostCodeResponse(updated))
}

// deleteCostCode godoc
// @Summary Delete a cost code
// @Description Removes an entry; invoices keep any dangling reference
// @Tags cost-codes
// @Param   id path string true "Cost code ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Cost code not found"
// @Failure 500 {object} map[string]string "Failed to delete cost code"
// @Router /cost-codes/{id} [delete]
func (h *costCodeHandler) deleteCostCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	costCodeID := c.Param("id")

	if err := h.costCodeService.DeleteCostCode(c.Request.Context(), costCodeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cost code not found"})
		} else {
			logger.Error("Failed to delete cost code", slog.String("error", err.Error()), slog.String("cost_code_id", costCodeID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cost code"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
