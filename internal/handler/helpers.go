package handler

import (
	"errors"
	"net/http"

	"gestorcash/internal/apierror"
	"gestorcash/internal/dto"
	"gestorcash/internal/middleware"
	"gestorcash/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// bindAndValidate binds the JSON body and runs the dto's validate tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, apierror.Field("body", "invalid JSON: "+err.Error()))
		return false
	}
	if err := validation.Struct(req); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

// bindQuery binds and validates list filters, including skip/limit.
func bindQuery(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		respondError(c, apierror.Field("query", err.Error()))
		return false
	}
	if err := validation.Struct(filter); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

// respondError writes the envelope for err. Only unclassified failures are
// logged; their cause never reaches the client.
func respondError(c *gin.Context, err error) {
	status, body := apierror.Status(err)
	if status == http.StatusInternalServerError {
		var se *apierror.StorageError
		evt := log.Error().Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("path", c.Request.URL.Path)
		if errors.As(err, &se) {
			evt = evt.Str("op", se.Op)
		}
		evt.Msg("request failed")
	}
	c.AbortWithStatusJSON(status, body)
}

func deleted(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}
