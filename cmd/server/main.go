package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vidclone/video-api-go/internal/config"
	"github.com/vidclone/video-api-go/internal/metrics"
	"github.com/vidclone/video-api-go/internal/models"
	"github.com/vidclone/video-api-go/internal/repository"
	"github.com/vidclone/video-api-go/internal/server"
	"github.com/vidclone/video-api-go/internal/service"
	"github.com/vidclone/video-api-go/internal/validation"
	"github.com/vidclone/video-api-go/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		logger.L().Error("Server exited with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet.
		_ = logger.Init("info", "")
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)

	var seedVideos []models.Video
	var seedComments map[string][]models.Comment
	if cfg.Seed.Enabled {
		seedVideos = repository.SeedVideos()
		seedComments = repository.SeedComments()
	}

	videos := repository.NewVideoStore(seedVideos)
	comments := repository.NewCommentStore(seedComments)

	logger.Log.Info("Catalog loaded",
		zap.Int("videos", videos.Count()),
		zap.Int("comments", comments.Count()),
	)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(videos.Count, comments.Count)
	}

	opts := []service.Option{service.WithMetrics(m)}
	deps := server.Dependencies{
		Videos:   videos,
		Comments: comments,
		Metrics:  m,
	}

	if cfg.RabbitMQ.Enabled {
		publisher, err := service.NewMessagePublisher(&cfg.RabbitMQ)
		if err != nil {
			logger.Log.Warn("Failed to connect to RabbitMQ, activity events will not be published",
				zap.Error(err),
				zap.String("host", cfg.RabbitMQ.Host),
			)
		} else {
			defer func() {
				if err := publisher.Close(); err != nil {
					logger.Log.Error("Failed to close RabbitMQ publisher", zap.Error(err))
				}
			}()
			opts = append(opts, service.WithPublisher(publisher, cfg.RabbitMQ.PublishTimeout))
			deps.Broker = publisher
		}
	}

	deps.Service = service.NewVideoService(videos, comments, validation.New(cfg.Validation), opts...)

	router := server.NewRouter(cfg, deps)
	srv := server.New(cfg.Server, router)

	if err := srv.Listen(); err != nil {
		return err
	}

	logger.Log.Info("Video API ready",
		zap.String("address", "http://"+srv.Addr()),
		zap.String("api", "http://"+srv.Addr()+"/api/"),
		zap.Strings("allowedOrigins", cfg.CORS.AllowedOrigins),
		zap.Bool("rabbitmq", deps.Broker != nil),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
