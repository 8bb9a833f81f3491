package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"patrol-watch/backend/internal/dto"
	"patrol-watch/backend/internal/service"
	"patrol-watch/backend/pkg/response"
)

// AssignmentHandler serves the route assignment endpoints.
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler creates the AssignmentHandler.
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// CreateAssignment binds an officer to a route for a date.
// POST /api/route-assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	assignment, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, assignment)
}

// ListAssignments lists assignments, role-filtered: admins see all,
// officers only their own.
// GET /api/route-assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	callerRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	assignments, err := h.assignmentSvc.List(c.Request.Context(), callerID, callerRole)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, assignments)
}

// GetTodayAssignment returns the officer's composite today view, or the
// "no assignment" sentinel.
// GET /api/route-assignments/today
func (h *AssignmentHandler) GetTodayAssignment(c *gin.Context) {
	officerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	today, err := h.assignmentSvc.GetTodayForOfficer(c.Request.Context(), officerID)
	if err != nil {
		if errors.Is(err, service.ErrRouteNotFound) {
			response.NotFound(c, 13001, "route not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, today)
}
