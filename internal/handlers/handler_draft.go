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

// draftHandler handles HTTP requests related to invoice drafts.
type draftHandler struct {
	draftService portssvc.DraftSvcFacade
}

// newDraftHandler creates a new draftHandler.
func newDraftHandler(ds portssvc.DraftSvcFacade) *draftHandler {
	return &draftHandler{
		draftService: ds,
	}
}

// registerDraftRoutes registers routes related to invoice drafts.
func registerDraftRoutes(rg *gin.RouterGroup, draftService portssvc.DraftSvcFacade) {
	h := newDraftHandler(draftService)

	drafts := rg.Group("/drafts")
	{
		drafts.POST("", h.createDraft)
		drafts.GET("", h.listDrafts)
		drafts.GET("/:id", h.getDraft)
		drafts.PATCH("/:id", h.updateDraft)
		drafts.DELETE("/:id", h.deleteDraft)
		drafts.GET("/:id/totals", h.getDraftTotals)
		drafts.POST("/:id/commit", h.commitDraft)

		drafts.POST("/:id/macros", h.addMacro)
		drafts.PATCH("/:id/macros/:macroId", h.updateMacro)
		drafts.DELETE("/:id/macros/:macroId", h.removeMacro)

		drafts.POST("/:id/macros/:macroId/items", h.addItem)
		drafts.PATCH("/:id/macros/:macroId/items/:itemId", h.updateItem)
		drafts.DELETE("/:id/macros/:macroId/items/:itemId", h.removeItem)
	}
}

// respondDraftError maps the common draft service failures onto HTTP
// responses.
func respondDraftError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	logger.Error("Draft operation failed",
		slog.String("action", action), slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
}

// createDraft godoc
// @Summary Start a new invoice draft
// @Description Creates a draft seeded with one macro line holding one empty item
// @Tags drafts
// @Produce  json
// @Success 201 {object} dto.DraftResponse
// @Failure 500 {object} map[string]string "Failed to create draft"
// @Router /drafts [post]
func (h *draftHandler) createDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	draft, err := h.draftService.CreateDraft(c.Request.Context())
	if err != nil {
		logger.Error("Failed to create draft", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create draft"})
		return
	}

	resp := dto.ToDraftResponse(draft)
	c.JSON(http.StatusCreated, resp)
}

// listDrafts godoc
// @Summary List invoice drafts
// @Tags drafts
// @Produce  json
// @Success 200 {array} dto.DraftResponse
// @Failure 500 {object} map[string]string "Failed to list drafts"
// @Router /drafts [get]
func (h *draftHandler) listDrafts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	drafts, err := h.draftService.ListDrafts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list drafts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list drafts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDraftResponse(drafts))
}

// getDraft godoc
// @Summary Get a draft by ID
// @Tags drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id} [get]
func (h *draftHandler) getDraft(c *gin.Context) {
	draft, err := h.draftService.GetDraftByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDraftError(c, err, "get draft")
		return
	}
	resp := dto.ToDraftResponse(draft)
	c.JSON(http.StatusOK, resp)
}

// updateDraft godoc
// @Summary Update draft header fields
// @Description Merges invoice number, name and project; omitted fields are untouched
// @Tags drafts
// @Accept  json
// @Produce  json
// @Param   id path string true "Draft ID"
// @Param   draft body dto.UpdateDraftRequest true "Fields to merge"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id} [patch]
func (h *draftHandler) updateDraft(c *gin.Context) {
	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	draft, err := h.draftService.UpdateDraft(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondDraftError(c, err, "update draft")
		return
	}
	resp := dto.ToDraftResponse(draft)
	c.JSON(http.StatusOK, resp)
}

// deleteDraft godoc
// @Summary Discard a draft
// @Tags drafts
// @Param   id path string true "Draft ID"
// @Success 204 "Discarded"
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id} [delete]
func (h *draftHandler) deleteDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.draftService.DeleteDraft(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		} else {
			logger.Error("Failed to delete draft", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete draft"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// getDraftTotals godoc
// @Summary Recompute draft totals
// @Description Returns per-item, per-macro and grand totals derived from the lines
// @Tags drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Success 200 {object} dto.TotalsResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id}/totals [get]
func (h *draftHandler) getDraftTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.draftService.GetDraftTotals(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		} else {
			logger.Error("Failed to compute draft totals", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute totals"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTotalsResponse(totals))
}

// commitDraft godoc
// @Summary Commit a draft into the invoice directory
// @Description Validates the draft; on success the invoice is prepended and the draft deleted
// @Tags drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Draft failed validation"
// @Failure 404 {object} map[string]string "Draft not found"
// @Failure 422 {object} map[string]string "Unresolved project or cost code"
// @Router /drafts/{id}/commit [post]
func (h *draftHandler) commitDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draftID := c.Param("id")

	invoice, err := h.draftService.CommitDraft(c.Request.Context(), draftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		} else if errors.Is(err, apperrors.ErrUnresolvedReference) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to commit draft", slog.String("error", err.Error()), slog.String("draft_id", draftID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit draft"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// addMacro godoc
// @Summary Add a macro line to a draft
// @Tags drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id}/macros [post]
func (h *draftHandler) addMacro(c *gin.Context) {
	draft, err := h.draftService.AddMacro(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDraftError(c, err, "add macro")
		return
	}
	resp := dto.ToDraftResponse(draft)
	c.JSON(http.StatusOK, resp)
}

// updateMacro godoc
// @Summary Update a macro line
// @Description Merges cost code and description; omitted fields are untouched
// @Tags drafts
// @Accept  json
// @Produce  json
// @Param   id path string true "Draft ID"
// @Param   macroId path string true "Macro line ID"
// @Param   macro body dto.UpdateMacroRequest true "Fields to merge"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft or macro not found"
// @Router /drafts/{id}/macros/{macroId} [patch]
func (h *draftHandler) updateMacro(c *gin.Context) {
	var req dto.UpdateMacroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	draft, err := h.draftService.UpdateMacro(c.Request.Context(), c.Param("id"), c.Param("macroId"), req)
	if err != nil {
		respondDraftError(c, err, "update macro")
		return
	}
	resp := dto.ToDraftResponse(draft)
	c.JSON(http.StatusOK, resp)
}

// removeMacro godoc
// @Summary Remove a macro line
// @Description Removal is unconditional; a draft may transiently hold zero macros
// @Tags drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Param   macroId path string true "Macro line ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /drafts/{id}/macros/{macroId} [delete]
func (h *draftHandler) removeMacro(c *gin.Context) {
	draft, err := h.draftService.RemoveMacro(c.Request.Context(), c.Param("id"), c.Param("macroId"))
	if err != nil {
		respondDraftError(c, err, "remove macro")
		return
	}
	resp := dto.ToDraftResponse(draft)
	c.JSON(http.StatusOK, resp)
}

// addItem godoc
// @Summary Add a line item to a macro
// @Tags drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Param   macroId path string true "Macro line ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft or macro not found"
// @Router /drafts/{id}/macros/{macroId}/items [post]
func (h *draftHandler) addItem(c *gin.Context) {
	draft, err := h.draftService.AddItem(c.Request.Context(), c.Param("id"), c.Param("macroId"))
	if err != nil {
		respondDraftError(c, err, "add item")
		return
	}
	resp := dto.ToDraftResponse(draft)
	c.JSON(http.StatusOK, resp)
}

// updateItem godoc
// @Summary Update a line item
// @Description Merges name, qty, unit and unit price; qty and price are free-form text
// @Tags drafts
// @Accept  json
// @Produce  json
// @Param   id path string true "Draft ID"
// @Param   macroId path string true "Macro line ID"
// @Param   itemId path string true "Line item ID"
// @Param   item body dto.UpdateItemRequest true "Fields to merge"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft, macro or item not found"
// @Router /drafts/{id}/macros/{macroId}/items/{itemId} [patch]
func (h *draftHandler) updateItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	draft, err := h.draftService.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("macroId"), c.Param("itemId"), req)
	if err != nil {
		respondDraftError(c, err, "update item")
		return
	}
	resp := dto.ToDraftResponse(draft)
	c.JSON(http.StatusOK, resp)
}

// removeItem godoc
// @Summary Remove a line item
// @Tags drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Param   macroId path string true "Macro line ID"
// @Param   itemId path string true "Line item ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft or macro not found"
// @Router /drafts/{id}/macros/{macroId}/items/{itemId} [delete]
func (h *draftHandler) removeItem(c *gin.Context) {
	draft, err := h.draftService.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("macroId"), c.Param("itemId"))
	if err != nil {
		respondDraftError(c, err, "remove item")
		return
	}
	resp := dto.ToDraftResponse(draft)
	c.JSON(http.StatusOK, resp)
}
