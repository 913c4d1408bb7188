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

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{
		customerService: cs,
	}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.DELETE("/:id", h.deleteCustomer)
	}
}

// createCustomer godoc
// @Summary Create a new customer
// @Description A customer must reference at least one existing project
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Unknown project reference"
// @Failure 500 {object} map[string]string "Failed to create customer"
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnresolvedReference) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create customer", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(created))
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce  json
// @Success 200 {array} dto.CustomerResponse
// @Failure 500 {object} map[string]string "Failed to list customers"
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list customers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Tags customers
// @Param   id path string true "Customer ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 500 {object} map[string]string "Failed to delete customer"
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID := c.Param("id")

	if err := h.customerService.DeleteCustomer(c.Request.Context(), customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else {
			logger.Error("Failed to delete customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
