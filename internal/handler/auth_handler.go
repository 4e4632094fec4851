package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/eventforge/backend/internal/apierror"
	"github.com/eventforge/backend/internal/auth"
	"github.com/eventforge/backend/internal/middleware"
	"github.com/eventforge/backend/internal/models"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/service"
	"github.com/eventforge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *scs.SessionManager
	respond     *Responder
}

// NewAuthHandler wires the auth routes. sessions is nil when cookie sessions are disabled.
func NewAuthHandler(authService *service.AuthService, sessions *scs.SessionManager, respond *Responder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		respond:     respond,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

func (r *RegisterRequest) normalize() {
	trim(&r.Username)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) normalize() {
	trim(&r.Username)
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Register creates an account and logs it in.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest

	// 1. Parse JSON request
	if err := bindJSON(c, &req, "Invalid registration data"); err != nil {
		logger.Log.Warn("Registration request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		h.respond.Error(c, err, "")
		return
	}

	logger.Log.Info("User registration attempt",
		zap.String("username", req.Username),
		zap.String("ip", c.ClientIP()),
	)

	// 2. Call service
	user, token, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	// 3. Bind the cookie session, if enabled
	if err := h.startSession(c, user); err != nil {
		h.respond.Error(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user.Public()})
}

// Login checks credentials and issues a token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest

	// 1. Parse JSON request
	if err := bindJSON(c, &req, "Invalid login data"); err != nil {
		logger.Log.Warn("Login request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		h.respond.Error(c, err, "")
		return
	}

	logger.Log.Info("User login attempt",
		zap.String("username", req.Username),
		zap.String("ip", c.ClientIP()),
	)

	// 2. Call service
	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.RecordAuthAttempt("login", "invalid")
		}
		h.respond.Error(c, err, "")
		return
	}
	middleware.RecordAuthAttempt("login", "success")

	// 3. Bind the cookie session, if enabled
	if err := h.startSession(c, user); err != nil {
		h.respond.Error(c, err, "")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user.Public()})
}

// Verify returns the authenticated user.
// GET /api/auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		apierror.Abort(c, http.StatusUnauthorized, apierror.Response{
			Message: "Authentication required",
			Code:    apierror.CodeUnauthorized,
		})
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), identity.ID)
	if errors.Is(err, repository.ErrNotFound) {
		// Signed for an account that has since been deleted
		apierror.Abort(c, http.StatusUnauthorized, apierror.Response{
			Message: "Invalid or expired token",
			Code:    apierror.CodeUnauthorized,
		})
		return
	}
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

// Logout destroys the cookie session. Bearer tokens are stateless and simply
// expire, so there is nothing to revoke for them.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.sessions != nil {
		ctx := c.Request.Context()
		if err := auth.EndSession(ctx, h.sessions); err != nil {
			h.respond.Error(c, sessionStoreError(err), "")
			return
		}
		h.sessions.WriteSessionCookie(ctx, c.Writer, "", time.Time{})
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) startSession(c *gin.Context, user *models.User) error {
	if h.sessions == nil {
		return nil
	}

	ctx := c.Request.Context()
	if err := auth.StartSession(ctx, h.sessions, &auth.Identity{ID: user.ID, Username: user.Username}); err != nil {
		return sessionStoreError(err)
	}

	token, expiry, err := h.sessions.Commit(ctx)
	if err != nil {
		return sessionStoreError(err)
	}
	h.sessions.WriteSessionCookie(ctx, c.Writer, token, expiry)

	logger.Log.Debug("Session started",
		zap.Uint("user_id", user.ID),
	)
	return nil
}

// sessionStoreError reports a failed session store call as an outage.
func sessionStoreError(err error) error {
	return fmt.Errorf("%w: session store: %v", repository.ErrUnavailable, err)
}
