package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/eventforge/backend/internal/apierror"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/service"
	"github.com/eventforge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errInvalidID is returned by parseID for path ids that are not positive integers.
var errInvalidID = errors.New("invalid id")

// Responder turns handler errors into the JSON error body.
type Responder struct {
	// ExposeDetail adds the raw error text to 500 responses. Never set in production.
	ExposeDetail bool
}

// Error maps err onto a status code. notFound is the message used for
// repository.ErrNotFound.
func (r *Responder) Error(c *gin.Context, err error, notFound string) {
	var validationErr *ValidationError

	switch {
	case errors.As(err, &validationErr):
		apierror.Abort(c, http.StatusBadRequest, apierror.Response{
			Message: validationErr.Message,
			Code:    apierror.CodeValidation,
			Errors:  validationErr.Fields,
		})
	case errors.Is(err, errInvalidID):
		apierror.Abort(c, http.StatusBadRequest, apierror.Response{
			Message: "Invalid ID format",
			Code:    apierror.CodeInvalidRequest,
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		apierror.Abort(c, http.StatusUnauthorized, apierror.Response{
			Message: "Invalid username or password",
			Code:    apierror.CodeUnauthorized,
		})
	case errors.Is(err, service.ErrSelfDelete):
		apierror.Abort(c, http.StatusBadRequest, apierror.Response{
			Message: "You cannot delete your own account",
			Code:    apierror.CodeForbidden,
		})
	case errors.Is(err, service.ErrUsernameTaken):
		apierror.Abort(c, http.StatusConflict, apierror.Response{
			Message: "Username already exists",
			Code:    apierror.CodeConflict,
		})
	case errors.Is(err, repository.ErrConflict):
		apierror.Abort(c, http.StatusConflict, apierror.Response{
			Message: "Resource conflicts with an existing one",
			Code:    apierror.CodeConflict,
		})
	case errors.Is(err, repository.ErrNotFound):
		apierror.Abort(c, http.StatusNotFound, apierror.Response{
			Message: notFound,
			Code:    apierror.CodeNotFound,
		})
	case errors.Is(err, repository.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		logger.Log.Error("Store unavailable",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		apierror.Abort(c, http.StatusServiceUnavailable, apierror.Response{
			Message: "Service temporarily unavailable",
			Code:    apierror.CodeUnavailable,
		})
	case errors.Is(err, context.Canceled):
		logger.Log.Debug("Request canceled by client",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		apierror.Abort(c, apierror.StatusClientClosedRequest, apierror.Response{
			Message: "Request canceled",
			Code:    apierror.CodeCanceled,
		})
	default:
		logger.Log.Error("Unhandled error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		body := apierror.Response{
			Message: "Internal server error",
			Code:    apierror.CodeInternal,
		}
		if r.ExposeDetail {
			body.Detail = err.Error()
		}
		apierror.Abort(c, http.StatusInternalServerError, body)
	}
}
