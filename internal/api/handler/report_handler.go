package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"patrol-watch/backend/internal/service"
	"patrol-watch/backend/pkg/response"
)

// ReportHandler serves the admin attendance report endpoints.
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler creates the ReportHandler.
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// ListAttendance returns the enriched attendance report.
// GET /api/attendance
func (h *ReportHandler) ListAttendance(c *gin.Context) {
	rows, err := h.reportSvc.ListAttendance(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, rows)
}

// ExportAttendance downloads the report as an .xlsx workbook.
// GET /api/attendance/export
func (h *ReportHandler) ExportAttendance(c *gin.Context) {
	buf, filename, err := h.reportSvc.ExportAttendance(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
