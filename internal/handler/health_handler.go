package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vidclone/video-api-go/internal/models"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// BrokerChecker reports whether the activity broker connection is usable.
type BrokerChecker interface {
	IsHealthy() bool
}

// Counter reports the size of a table.
type Counter interface {
	Count() int
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	videos   Counter
	comments Counter
	broker   BrokerChecker
}

// NewHealthHandler creates a new HealthHandler instance. broker is nil when activity
// events are not published to a broker.
func NewHealthHandler(videos, comments Counter, broker BrokerChecker) *HealthHandler {
	return &HealthHandler{
		videos:   videos,
		comments: comments,
		broker:   broker,
	}
}

// LivenessProbe checks if the application is running.
func (h *HealthHandler) LivenessProbe(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Message:   "Video API server is running",
		Version:   Version,
		Endpoints: Endpoints,
	})
}

// ReadinessProbe checks if the application is ready to serve traffic.
func (h *HealthHandler) ReadinessProbe(c *gin.Context) {
	body := gin.H{
		"status":   "UP",
		"videos":   count(h.videos),
		"comments": count(h.comments),
		"rabbitmq": "disabled",
		"time":     time.Now(),
	}

	if h.broker != nil {
		if !h.broker.IsHealthy() {
			body["status"] = "DOWN"
			body["rabbitmq"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		body["rabbitmq"] = "healthy"
	}

	c.JSON(http.StatusOK, body)
}

func count(c Counter) int {
	if c == nil {
		return 0
	}
	return c.Count()
}
