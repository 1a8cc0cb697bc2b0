// Package handler provides HTTP request handlers for the application.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidclone/video-api-go/internal/models"
	"github.com/vidclone/video-api-go/internal/service"
)

// VideoHandler handles video catalog requests.
type VideoHandler struct {
	videoService *service.VideoService
}

// NewVideoHandler creates a new VideoHandler instance.
func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// ListVideos handles GET /api/videos with an optional search query parameter.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.videoService.ListVideos(c.Request.Context(), c.Query("search"))
	if err != nil {
		handleError(c, err, "Failed to fetch videos")
		return
	}

	c.JSON(http.StatusOK, videos)
}

// GetVideo handles GET /api/videos/:id.
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoService.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "Failed to fetch video")
		return
	}

	c.JSON(http.StatusOK, video)
}

// UploadVideo handles POST /api/upload.
func (h *VideoHandler) UploadVideo(c *gin.Context) {
	var req models.UploadVideoRequest
	if !bindJSON(c, &req) {
		return
	}

	video, err := h.videoService.UploadVideo(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err, "Failed to upload video")
		return
	}

	c.JSON(http.StatusCreated, video)
}
