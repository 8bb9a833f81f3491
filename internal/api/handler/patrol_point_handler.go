package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"patrol-watch/backend/internal/dto"
	"patrol-watch/backend/internal/service"
	"patrol-watch/backend/pkg/response"
)

// PatrolPointHandler serves the checkpoint catalog endpoints.
type PatrolPointHandler struct {
	pointSvc service.PatrolPointService
}

// NewPatrolPointHandler creates the PatrolPointHandler.
func NewPatrolPointHandler(pointSvc service.PatrolPointService) *PatrolPointHandler {
	return &PatrolPointHandler{pointSvc: pointSvc}
}

// CreatePatrolPoint creates a checkpoint.
// POST /api/patrol-points
func (h *PatrolPointHandler) CreatePatrolPoint(c *gin.Context) {
	var req dto.CreatePatrolPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	point, err := h.pointSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, point)
}

// ListPatrolPoints lists all checkpoints.
// GET /api/patrol-points
func (h *PatrolPointHandler) ListPatrolPoints(c *gin.Context) {
	points, err := h.pointSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, points)
}

// DeletePatrolPoint removes a checkpoint.
// DELETE /api/patrol-points/:id
func (h *PatrolPointHandler) DeletePatrolPoint(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "patrol point id is required")
		return
	}

	if err := h.pointSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPatrolPointNotFound) {
			response.NotFound(c, 12001, "patrol point not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "patrol point deleted"})
}
