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

// invoiceHandler handles HTTP requests related to the invoice directory.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers routes related to committed invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.GET("/:id/print", h.printInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

// listInvoices godoc
// @Summary List or search committed invoices
// @Description Without q, returns the directory newest first; with q, filters by substring against number or name
// @Tags invoices
// @Produce  json
// @Param   q query string false "Search query"
// @Success 200 {array} dto.InvoiceSummaryResponse
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.SearchInvoices(c.Request.Context(), c.Query("q"))
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceSummaryResponse(invoices))
}

// getInvoice godoc
// @Summary Get a committed invoice by ID
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to get invoice"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to get invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// printInvoice godoc
// @Summary Render an invoice as a printable HTML page
// @Description Returns a self-contained document; dangling references render with fallback labels
// @Tags invoices
// @Produce  html
// @Param   id path string true "Invoice ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to render invoice"
// @Router /invoices/{id}/print [get]
func (h *invoiceHandler) printInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	page, err := h.invoiceService.RenderInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to render invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
		}
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// deleteInvoice godoc
// @Summary Delete a committed invoice
// @Description Removal is permanent; there is no edit or undo for committed invoices
// @Tags invoices
// @Param   id path string true "Invoice ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to delete invoice"
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			logger.Error("Failed to delete invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
