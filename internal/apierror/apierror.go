// Package apierror defines the JSON error body shared by handlers and middleware.
package apierror

import "github.com/gin-gonic/gin"

// Error codes
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeUnavailable    = "SERVICE_UNAVAILABLE"
	CodeInternal       = "INTERNAL_ERROR"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeCanceled       = "REQUEST_CANCELED"
)

// StatusClientClosedRequest is written when the client went away before the
// request finished. Nobody reads it; it keeps logs and metrics apart from 5xx.
const StatusClientClosedRequest = 499

// Response is the body of every non-2xx answer.
type Response struct {
	Message string       `json:"message"`
	Code    string       `json:"code"`
	Errors  []FieldError `json:"errors,omitempty"`
	Detail  string       `json:"detail,omitempty"`
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Abort writes body with status and stops the handler chain.
func Abort(c *gin.Context, status int, body Response) {
	c.AbortWithStatusJSON(status, body)
}
