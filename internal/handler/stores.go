package handler

import (
	"net/http"

	"gestorcash/internal/dto"
	"gestorcash/internal/service"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	stores    service.StoreService
	registers service.CashRegisterService
}

func NewStoreHandler(stores service.StoreService, registers service.CashRegisterService) *StoreHandler {
	return &StoreHandler{stores: stores, registers: registers}
}

// Create godoc
// @Summary Register a store
// @Tags stores
// @Accept json
// @Produce json
// @Param body body dto.CreateStoreRequest true "Store"
// @Success 201 {object} dto.StoreResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /api/stores [post]
func (h *StoreHandler) Create(c *gin.Context) {
	var req dto.CreateStoreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.stores.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List stores
// @Tags stores
// @Produce json
// @Param active_only query bool false "Hide deactivated stores" default(true)
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.StoreResponse
// @Router /api/stores [get]
func (h *StoreHandler) List(c *gin.Context) {
	var f dto.StoreFilter
	if !bindQuery(c, &f) {
		return
	}
	resp, err := h.stores.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a store
// @Tags stores
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/stores/{id} [get]
func (h *StoreHandler) Get(c *gin.Context) {
	resp, err := h.stores.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Replace a store
// @Tags stores
// @Accept json
// @Produce json
// @Param id path string true "Store ID"
// @Param body body dto.StoreRequest true "Store"
// @Success 200 {object} dto.StoreResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /api/stores/{id} [put]
func (h *StoreHandler) Update(c *gin.Context) {
	var req dto.StoreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.stores.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Deactivate a store
// @Tags stores
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/stores/{id} [delete]
func (h *StoreHandler) Delete(c *gin.Context) {
	if err := h.stores.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Store deactivated successfully")
}

// ── Cash registers ────────────────────────────────────────────────────────────

// CreateRegister godoc
// @Summary Register a cash register
// @Tags registers
// @Accept json
// @Produce json
// @Param body body dto.CreateCashRegisterRequest true "Cash register"
// @Success 201 {object} dto.CashRegisterResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /api/stores/registers [post]
func (h *StoreHandler) CreateRegister(c *gin.Context) {
	var req dto.CreateCashRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.registers.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListRegisters godoc
// @Summary List cash registers
// @Tags registers
// @Produce json
// @Param store_id query string false "Store"
// @Param active_only query bool false "Hide deactivated registers" default(true)
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.CashRegisterResponse
// @Router /api/stores/registers [get]
func (h *StoreHandler) ListRegisters(c *gin.Context) {
	var f dto.CashRegisterFilter
	if !bindQuery(c, &f) {
		return
	}
	resp, err := h.registers.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRegister godoc
// @Summary Get a cash register
// @Tags registers
// @Produce json
// @Param id path string true "Register ID"
// @Success 200 {object} dto.CashRegisterResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/stores/registers/{id} [get]
func (h *StoreHandler) GetRegister(c *gin.Context) {
	resp, err := h.registers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateRegister godoc
// @Summary Replace a cash register
// @Tags registers
// @Accept json
// @Produce json
// @Param id path string true "Register ID"
// @Param body body dto.CashRegisterRequest true "Cash register"
// @Success 200 {object} dto.CashRegisterResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/stores/registers/{id} [put]
func (h *StoreHandler) UpdateRegister(c *gin.Context) {
	var req dto.CashRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.registers.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteRegister godoc
// @Summary Deactivate a cash register
// @Tags registers
// @Produce json
// @Param id path string true "Register ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/stores/registers/{id} [delete]
func (h *StoreHandler) DeleteRegister(c *gin.Context) {
	if err := h.registers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Cash register deactivated successfully")
}
