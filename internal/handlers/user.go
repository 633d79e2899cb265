package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/julianmr/helpdesk-api/internal/dto"
	apierrors "github.com/julianmr/helpdesk-api/internal/errors"
	"github.com/julianmr/helpdesk-api/internal/services"
)

// UserHandler serves the admin-only user directory.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns every user. Routed behind RequireAdmin.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserListDTO(users))
}
