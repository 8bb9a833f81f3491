package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"patrol-watch/backend/internal/dto"
	"patrol-watch/backend/internal/service"
	"patrol-watch/backend/pkg/response"
)

// AttendanceHandler serves the check-in endpoint.
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler creates the AttendanceHandler.
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// CheckIn marks attendance at a checkpoint.
// POST /api/attendance
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	officerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	att, err := h.attendanceSvc.CheckIn(c.Request.Context(), officerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			response.NotFound(c, 14001, "route assignment not found")
		case errors.Is(err, service.ErrAttendanceExists):
			response.BadRequest(c, 14002, "attendance already marked for this point")
		case errors.Is(err, service.ErrNotAssignmentOwner):
			response.Forbidden(c, 14003, "assignment belongs to another officer")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, att)
}
