// Package server wires the gin engine and owns the HTTP listener lifecycle.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vidclone/video-api-go/internal/config"
	"github.com/vidclone/video-api-go/internal/handler"
	"github.com/vidclone/video-api-go/internal/metrics"
	"github.com/vidclone/video-api-go/internal/middleware"
	"github.com/vidclone/video-api-go/internal/service"
)

// Dependencies are the objects the routes are served from.
type Dependencies struct {
	Service  *service.VideoService
	Videos   handler.Counter
	Comments handler.Counter
	// Broker is nil when activity events are not sent to RabbitMQ.
	Broker handler.BrokerChecker
	// Metrics is nil when the metrics endpoint is disabled.
	Metrics *metrics.Metrics
}

// NewRouter builds the engine with middleware, the /api routes and the not-found fallback.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}
	router.Use(middleware.Recovery())
	router.Use(allowListedCORS(cfg.CORS))

	videoHandler := handler.NewVideoHandler(deps.Service)
	commentHandler := handler.NewCommentHandler(deps.Service)
	healthHandler := handler.NewHealthHandler(deps.Videos, deps.Comments, deps.Broker)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.LivenessProbe)
		api.GET("/health/ready", healthHandler.ReadinessProbe)

		api.GET("/videos", videoHandler.ListVideos)
		api.GET("/videos/:id", videoHandler.GetVideo)
		api.GET("/videos/:id/comments", commentHandler.ListComments)
		api.POST("/videos/:id/comments", commentHandler.AddComment)

		api.POST("/upload", videoHandler.UploadVideo)
	}

	if deps.Metrics != nil && cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(deps.Metrics.Handler()))
	}

	router.NoRoute(handler.NotFound)

	return router
}

// allowListedCORS applies the CORS policy only to allowed origins. Other origins are served
// without CORS headers instead of being rejected.
func allowListedCORS(cfg config.CORSConfig) gin.HandlerFunc {
	conf := corsConfig(cfg)
	handler := cors.New(conf)

	allowed := make(map[string]struct{}, len(conf.AllowOrigins))
	for _, origin := range conf.AllowOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; origin == "" || !ok {
			c.Next()
			return
		}
		handler(c)
	}
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = config.DefaultAllowedOrigins
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           cfg.MaxAge,
	}
}
