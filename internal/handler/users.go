package handler

import (
	"net/http"

	"gestorcash/internal/dto"
	"gestorcash/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{ svc service.UserService }

func NewUserHandler(svc service.UserService) *UserHandler { return &UserHandler{svc: svc} }

// Create godoc
// @Summary Register a user under their identity-provider uid
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.CreateUserRequest true "User"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
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
// @Summary List users
// @Tags users
// @Produce json
// @Param role query string false "DM, SM or ASM"
// @Param store_id query string false "Store"
// @Param active_only query bool false "Hide deactivated users" default(true)
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var f dto.UserFilter
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
// @Summary Get a user
// @Tags users
// @Produce json
// @Param uid path string true "User uid"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/users/{uid} [get]
func (h *UserHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Replace a user's mutable fields
// @Tags users
// @Accept json
// @Produce json
// @Param uid path string true "User uid"
// @Param body body dto.UserRequest true "User"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /api/users/{uid} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("uid"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Deactivate a user
// @Tags users
// @Produce json
// @Param uid path string true "User uid"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/users/{uid} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("uid")); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "User deactivated successfully")
}
