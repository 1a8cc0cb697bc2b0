package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vidclone/video-api-go/internal/models"
	"github.com/vidclone/video-api-go/internal/service"
	"github.com/vidclone/video-api-go/pkg/logger"
)

// Endpoints lists the public routes; it is echoed by the health and not-found responses.
var Endpoints = []string{
	"GET /api/health",
	"GET /api/videos",
	"GET /api/videos/<id>",
	"GET /api/videos/<id>/comments",
	"POST /api/videos/<id>/comments",
	"POST /api/upload",
}

// NotFound answers every unmatched method and path.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:              "Endpoint not found",
		AvailableEndpoints: Endpoints,
	})
}

// bindJSON decodes the request body into dst. An empty body leaves dst zeroed so the
// service reports the missing field instead of a decoding error.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		logger.L().Warn("Invalid request payload",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// handleError maps service errors to status codes. fallback is the client-facing message for
// unexpected failures; the cause goes to details.
func handleError(c *gin.Context, err error, fallback string) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFoundErr.Error()})
	default:
		logger.L().Error("Processing error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   fallback,
			Details: err.Error(),
		})
	}
}
