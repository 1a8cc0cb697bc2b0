package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidclone/video-api-go/internal/models"
	"github.com/vidclone/video-api-go/internal/service"
)

// CommentHandler handles per-video comment requests.
type CommentHandler struct {
	videoService *service.VideoService
}

func NewCommentHandler(videoService *service.VideoService) *CommentHandler {
	return &CommentHandler{videoService: videoService}
}

// ListComments handles GET /api/videos/:id/comments.
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.videoService.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "Failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// AddComment handles POST /api/videos/:id/comments.
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.videoService.AddComment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err, "Failed to add comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}
