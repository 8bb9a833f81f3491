package handler

import (
	"github.com/gin-gonic/gin"

	"patrol-watch/backend/internal/service"
	"patrol-watch/backend/pkg/response"
)

// UserHandler serves the user module endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListOfficers returns all officer accounts.
// GET /api/users/officers
func (h *UserHandler) ListOfficers(c *gin.Context) {
	officers, err := h.userSvc.ListOfficers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, officers)
}
