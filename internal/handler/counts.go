package handler

import (
	"net/http"

	"gestorcash/internal/dto"
	"gestorcash/internal/service"

	"github.com/gin-gonic/gin"
)

type OpeningHandler struct{ svc service.OpeningCountService }

func NewOpeningHandler(svc service.OpeningCountService) *OpeningHandler {
	return &OpeningHandler{svc: svc}
}

// Create godoc
// @Summary Record an opening count
// @Tags opening
// @Accept json
// @Produce json
// @Param body body dto.OpeningCountRequest true "Opening count"
// @Success 201 {object} dto.OpeningCountResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/opening [post]
func (h *OpeningHandler) Create(c *gin.Context) {
	var req dto.OpeningCountRequest
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
// @Summary List opening counts ordered by timestamp
// @Tags opening
// @Produce json
// @Param store_id query string false "Store"
// @Param register_id query string false "Register"
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.OpeningCountResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/opening [get]
func (h *OpeningHandler) List(c *gin.Context) {
	var f dto.CountFilter
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

// Get godoc
// @Summary Get an opening count
// @Tags opening
// @Produce json
// @Param id path string true "Opening count ID"
// @Success 200 {object} dto.OpeningCountResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/opening/{id} [get]
func (h *OpeningHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Replace an opening count
// @Tags opening
// @Accept json
// @Produce json
// @Param id path string true "Opening count ID"
// @Param body body dto.OpeningCountRequest true "Opening count"
// @Success 200 {object} dto.OpeningCountResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/opening/{id} [put]
func (h *OpeningHandler) Update(c *gin.Context) {
	var req dto.OpeningCountRequest
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
// @Summary Delete an opening count
// @Tags opening
// @Produce json
// @Param id path string true "Opening count ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/opening/{id} [delete]
func (h *OpeningHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Opening count deleted successfully")
}

type ClosingHandler struct{ svc service.ClosingCountService }

func NewClosingHandler(svc service.ClosingCountService) *ClosingHandler {
	return &ClosingHandler{svc: svc}
}

// Create godoc
// @Summary Record a closing count
// @Tags closing
// @Accept json
// @Produce json
// @Param body body dto.ClosingCountRequest true "Closing count"
// @Success 201 {object} dto.ClosingCountResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/closing [post]
func (h *ClosingHandler) Create(c *gin.Context) {
	var req dto.ClosingCountRequest
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
// @Summary List closing counts ordered by timestamp
// @Tags closing
// @Produce json
// @Param store_id query string false "Store"
// @Param register_id query string false "Register"
// @Param date query string false "Day (YYYY-MM-DD)"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.ClosingCountResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/closing [get]
func (h *ClosingHandler) List(c *gin.Context) {
	var f dto.CountFilter
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

// Get godoc
// @Summary Get a closing count
// @Tags closing
// @Produce json
// @Param id path string true "Closing count ID"
// @Success 200 {object} dto.ClosingCountResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/closing/{id} [get]
func (h *ClosingHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Replace a closing count
// @Tags closing
// @Accept json
// @Produce json
// @Param id path string true "Closing count ID"
// @Param body body dto.ClosingCountRequest true "Closing count"
// @Success 200 {object} dto.ClosingCountResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/closing/{id} [put]
func (h *ClosingHandler) Update(c *gin.Context) {
	var req dto.ClosingCountRequest
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
// @Summary Delete a closing count
// @Tags closing
// @Produce json
// @Param id path string true "Closing count ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/closing/{id} [delete]
func (h *ClosingHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Closing count deleted successfully")
}
