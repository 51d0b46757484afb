package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangang/skillhub/backend/pkg/logger"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AppError represents a structured application error with HTTP status and error code.
type AppError struct {
	HTTPStatus int    // HTTP status code (e.g. 400, 404, 500)
	Code       int    // Application-level error code
	Message    string // Human-readable error message
}

func (e *AppError) Error() string {
	return e.Message
}

// Pre-defined error constructors

func NewBadRequest(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Code: 400, Message: msg}
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusUnauthorized, Code: 401, Message: msg}
}

func NewForbidden(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusForbidden, Code: 403, Message: msg}
}

func NewNotFound(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusNotFound, Code: 404, Message: msg}
}

func NewServerError(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusInternalServerError, Code: 500, Message: msg}
}

// --- Gin response helpers ---

// Error sends an error response. If err is an *AppError, its code and status
// are used; any other error renders as an opaque 500 so store-layer details
// never leak to the caller.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
		})
		return
	}
	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Code:    500,
		Message: "internal server error",
	})
}

// Convenience error response functions

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Code: 400, Message: msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Code: 401, Message: msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, ErrorBody{Code: 403, Message: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorBody{Code: 404, Message: msg})
}

func ServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Code: 500, Message: msg})
}
