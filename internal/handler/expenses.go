package handler

import (
	"net/http"

	"gestorcash/internal/dto"
	"gestorcash/internal/service"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct{ svc service.ExpenseService }

func NewExpenseHandler(svc service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// Create godoc
// @Summary Record an expense
// @Description date defaults to the server's current day when omitted.
// @Tags expenses
// @Accept json
// @Produce json
// @Param body body dto.ExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.ExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List expenses, newest first
// @Tags expenses
// @Produce json
// @Param store_id query string false "Store"
// @Param category query string false "Category"
// @Param date query string false "Exact day (YYYY-MM-DD)"
// @Param date_from query string false "From day, inclusive"
// @Param date_to query string false "To day, inclusive"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var f dto.ExpenseFilter
	if !bindQuery(c, &f) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary Expense count and total per category
// @Tags expenses
// @Produce json
// @Param store_id query string false "Store"
// @Param date_from query string false "From day, inclusive"
// @Param date_to query string false "To day, inclusive"
// @Success 200 {object} dto.ExpenseStats
// @Failure 400 {object} apierror.APIError
// @Router /api/expenses/stats/by-category [get]
func (h *ExpenseHandler) Stats(c *gin.Context) {
	var f dto.ExpenseStatsFilter
	if !bindQuery(c, &f) {
		return
	}
	stats, err := h.svc.StatsByCategory(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Get godoc
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Replace an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param body body dto.ExpenseRequest true "Expense"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req dto.ExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Expense deleted successfully")
}
