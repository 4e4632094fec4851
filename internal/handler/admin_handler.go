package handler

import (
	"net/http"

	"github.com/eventforge/backend/internal/apierror"
	"github.com/eventforge/backend/internal/middleware"
	"github.com/eventforge/backend/internal/models"
	"github.com/eventforge/backend/internal/service"
	"github.com/eventforge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	authService *service.AuthService
	respond     *Responder
}

func NewAdminHandler(authService *service.AuthService, respond *Responder) *AdminHandler {
	return &AdminHandler{
		authService: authService,
		respond:     respond,
	}
}

// CreateUserRequest uses the same rules as self-registration
type CreateUserRequest = RegisterRequest

// ListUsers returns all admin accounts
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	c.JSON(http.StatusOK, public)
}

// CreateUser adds an admin account
// POST /api/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := bindJSON(c, &req, "Invalid user data"); err != nil {
		h.respond.Error(c, err, "")
		return
	}

	user, err := h.authService.CreateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, user.Public())
}

// DeleteUser removes an admin account other than the caller's own
// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		apierror.Abort(c, http.StatusUnauthorized, apierror.Response{
			Message: "Authentication required",
			Code:    apierror.CodeUnauthorized,
		})
		return
	}

	logger.Log.Info("Admin deleting user",
		zap.Uint("admin_id", identity.ID),
		zap.Uint("user_id", id),
	)

	if err := h.authService.DeleteUser(c.Request.Context(), identity.ID, id); err != nil {
		h.respond.Error(c, err, "User not found")
		return
	}

	c.Status(http.StatusNoContent)
}
