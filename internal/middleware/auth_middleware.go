package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/eventforge/backend/internal/apierror"
	"github.com/eventforge/backend/internal/auth"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdentityKey is the gin context key holding the *auth.Identity of the caller.
const IdentityKey = "identity"

// RequireAuth rejects requests the strategy cannot attribute to a user.
func RequireAuth(strategy auth.Strategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := strategy.ResolveIdentity(c.Request)
		if err != nil {
			rejectAuth(c, strategy.Name(), err)
			return
		}

		RecordAuthAttempt(strategy.Name(), "success")

		// Add identity to context (handlers can access)
		c.Set(IdentityKey, identity)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}

func rejectAuth(c *gin.Context, strategy string, err error) {
	switch {
	case errors.Is(err, auth.ErrNoCredentials):
		RecordAuthAttempt(strategy, "missing")
		apierror.Abort(c, http.StatusUnauthorized, apierror.Response{
			Message: "Authentication required",
			Code:    apierror.CodeUnauthorized,
		})
	case errors.Is(err, auth.ErrInvalidFormat):
		RecordAuthAttempt(strategy, "malformed")
		apierror.Abort(c, http.StatusUnauthorized, apierror.Response{
			Message: "Invalid authentication format",
			Code:    apierror.CodeUnauthorized,
		})
	case errors.Is(err, auth.ErrInvalidCredentials):
		RecordAuthAttempt(strategy, "invalid")
		apierror.Abort(c, http.StatusUnauthorized, apierror.Response{
			Message: "Invalid or expired token",
			Code:    apierror.CodeUnauthorized,
		})
	case errors.Is(err, repository.ErrUnavailable):
		RecordAuthAttempt(strategy, "error")
		logger.Log.Error("Identity check failed: store unavailable",
			zap.String("strategy", strategy),
			zap.Error(err),
		)
		apierror.Abort(c, http.StatusServiceUnavailable, apierror.Response{
			Message: "Service temporarily unavailable",
			Code:    apierror.CodeUnavailable,
		})
	case errors.Is(err, context.Canceled):
		RecordAuthAttempt(strategy, "canceled")
		logger.Log.Debug("Identity check canceled by client",
			zap.String("strategy", strategy),
		)
		apierror.Abort(c, apierror.StatusClientClosedRequest, apierror.Response{
			Message: "Request canceled",
			Code:    apierror.CodeCanceled,
		})
	default:
		RecordAuthAttempt(strategy, "error")
		logger.Log.Error("Identity check failed",
			zap.String("strategy", strategy),
			zap.Error(err),
		)
		apierror.Abort(c, http.StatusInternalServerError, apierror.Response{
			Message: "Internal server error",
			Code:    apierror.CodeInternal,
		})
	}
}

// CurrentIdentity returns the identity stored by RequireAuth.
func CurrentIdentity(c *gin.Context) (*auth.Identity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok && identity != nil
}
