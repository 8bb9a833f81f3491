package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"patrol-watch/backend/internal/dto"
	"patrol-watch/backend/internal/service"
	"patrol-watch/backend/pkg/response"
)

// RouteHandler serves the route catalog endpoints.
type RouteHandler struct {
	routeSvc service.RouteService
}

// NewRouteHandler creates the RouteHandler.
func NewRouteHandler(routeSvc service.RouteService) *RouteHandler {
	return &RouteHandler{routeSvc: routeSvc}
}

// CreateRoute creates a patrol route.
// POST /api/routes
func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var req dto.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	route, err := h.routeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, route)
}

// ListRoutes lists all routes.
// GET /api/routes
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	routes, err := h.routeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, routes)
}

// DeleteRoute removes a route.
// DELETE /api/routes/:id
func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "route id is required")
		return
	}

	if err := h.routeSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRouteNotFound) {
			response.NotFound(c, 13001, "route not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "route deleted"})
}
