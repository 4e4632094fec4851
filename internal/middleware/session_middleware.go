package middleware

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/eventforge/backend/internal/apierror"
	"github.com/eventforge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoadSession loads the session named by the request cookie into the request
// context. Nothing is written back here; handlers that change the session
// commit it themselves.
func LoadSession(sm *scs.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if cookie, err := c.Request.Cookie(sm.Cookie.Name); err == nil {
			token = cookie.Value
		}

		ctx, err := sm.Load(c.Request.Context(), token)
		if err != nil {
			logger.Log.Error("Failed to load session",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			apierror.Abort(c, http.StatusServiceUnavailable, apierror.Response{
				Message: "Service temporarily unavailable",
				Code:    apierror.CodeUnavailable,
			})
			return
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
