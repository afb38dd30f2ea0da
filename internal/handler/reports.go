package handler

import (
	"errors"
	"net/http"

	"gestorcash/internal/apierror"
	"gestorcash/internal/dto"
	"gestorcash/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ReportHandler struct{ svc service.DailyReportService }

func NewReportHandler(svc service.DailyReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Create godoc
// @Summary Store a daily report
// @Tags reports
// @Accept json
// @Produce json
// @Param body body dto.DailyReportRequest true "Daily report"
// @Success 201 {object} dto.DailyReportResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.DailyReportRequest
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
// @Summary List daily reports, most recent day first
// @Tags reports
// @Produce json
// @Param store_id query string false "Store"
// @Param date_from query string false "From day, inclusive"
// @Param date_to query string false "To day, inclusive"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} dto.DailyReportResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	var f dto.ReportFilter
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
// @Summary Get a daily report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/reports/{id} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Replace a daily report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param body body dto.DailyReportRequest true "Daily report"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/reports/{id} [put]
func (h *ReportHandler) Update(c *gin.Context) {
	var req dto.DailyReportRequest
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
// @Summary Delete a daily report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/reports/{id} [delete]
func (h *ReportHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "Report deleted successfully")
}

// PDF godoc
// @Summary Download a daily report as PDF
// @Tags reports
// @Produce application/pdf
// @Param id path string true "Report ID"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /api/reports/{id}/pdf [get]
func (h *ReportHandler) PDF(c *gin.Context) {
	name, pdf, err := h.svc.PDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Email godoc
// @Summary Mail a daily report PDF
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param body body dto.EmailReportRequest true "Recipient"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Failure 503 {object} apierror.APIError
// @Router /api/reports/{id}/email [post]
func (h *ReportHandler) Email(c *gin.Context) {
	var req dto.EmailReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	err := h.svc.Email(c.Request.Context(), c.Param("id"), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Report sent to " + req.To})
	case errors.Is(err, service.ErrMailDisabled):
		c.JSON(http.StatusServiceUnavailable, apierror.New("Email delivery is not configured"))
	case errors.Is(err, service.ErrMailUnavailable):
		log.Warn().Err(err).Str("report_id", c.Param("id")).Msg("report email failed")
		c.JSON(http.StatusServiceUnavailable, apierror.New("Email delivery is temporarily unavailable"))
	default:
		respondError(c, err)
	}
}
