// Package service provides business logic for the video catalog.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vidclone/video-api-go/internal/metrics"
	"github.com/vidclone/video-api-go/internal/models"
	"github.com/vidclone/video-api-go/internal/repository"
	"github.com/vidclone/video-api-go/internal/validation"
	"github.com/vidclone/video-api-go/pkg/logger"
)

// Defaults applied to records created through the API.
const (
	DefaultDuration    = "0:00"
	DefaultViews       = "0"
	JustNow            = "just now"
	DefaultChannelName = "Your Channel"
	DefaultSubscribers = "1K"
	AnonymousAuthor    = "Anonymous"
)

// VideoService handles video and comment business logic.
type VideoService struct {
	videos         repository.VideoRepository
	comments       repository.CommentRepository
	validator      *validation.Validator
	publisher      EventPublisher
	metrics        *metrics.Metrics
	publishTimeout time.Duration
}

// Option customizes a VideoService.
type Option func(*VideoService)

// WithPublisher sends activity events to p after each successful write.
func WithPublisher(p EventPublisher, timeout time.Duration) Option {
	return func(s *VideoService) {
		if p != nil {
			s.publisher = p
		}
		s.publishTimeout = publishTimeout(timeout)
	}
}

// WithMetrics records write counters on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *VideoService) {
		s.metrics = m
	}
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(videos repository.VideoRepository, comments repository.CommentRepository, validator *validation.Validator, opts ...Option) *VideoService {
	s := &VideoService{
		videos:         videos,
		comments:       comments,
		validator:      validator,
		publisher:      NoopPublisher{},
		publishTimeout: publishTimeout(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListVideos returns the catalog, filtered by search when it is not blank.
func (s *VideoService) ListVideos(ctx context.Context, search string) ([]models.Video, error) {
	search = strings.TrimSpace(search)

	videos, err := s.videos.List(ctx, search)
	if err != nil {
		return nil, &ProcessingError{Message: "failed to list videos", Cause: err}
	}

	if search != "" {
		logger.L().Info("Searched videos",
			zap.String("search", search),
			zap.Int("matches", len(videos)),
		)
	} else {
		logger.L().Debug("Listed videos", zap.Int("count", len(videos)))
	}

	return videos, nil
}

// GetVideo returns the video with the given id or a *NotFoundError.
func (s *VideoService) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			logger.L().Warn("Video not found", zap.String("videoId", id))
			return nil, &NotFoundError{Resource: "Video", ID: id}
		}
		return nil, &ProcessingError{Message: "failed to get video", Cause: err}
	}

	return video, nil
}

// UploadVideo validates req, fills the display defaults and appends the video.
func (s *VideoService) UploadVideo(ctx context.Context, req *models.UploadVideoRequest) (*models.Video, error) {
	if err := s.validator.ValidateUpload(req); err != nil {
		logger.L().Warn("Upload validation failed", zap.Error(err))
		return nil, &ValidationError{Message: err.Error()}
	}

	channelName := req.Channel
	if channelName == "" {
		channelName = DefaultChannelName
	}

	video := models.Video{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   models.DefaultThumbnail,
		Duration:    DefaultDuration,
		Views:       DefaultViews,
		UploadDate:  JustNow,
		Channel: models.Channel{
			Name:        channelName,
			Avatar:      models.DefaultChannelAvatar,
			Subscribers: DefaultSubscribers,
		},
		VideoURL: req.VideoURL,
	}

	created, err := s.videos.Append(ctx, video)
	if err != nil {
		return nil, &ProcessingError{Message: "failed to store video", Cause: err}
	}

	logger.L().Info("Video uploaded",
		zap.String("videoId", created.ID),
		zap.String("title", created.Title),
	)

	if s.metrics != nil {
		s.metrics.VideosUploaded.Inc()
	}

	event := newActivityEvent(EventVideoUploaded, created.ID)
	event.Title = created.Title
	s.publish(ctx, event)

	return created, nil
}

// ListComments returns the comments of videoID; unknown videos yield an empty slice.
func (s *VideoService) ListComments(ctx context.Context, videoID string) ([]models.Comment, error) {
	comments, err := s.comments.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, &ProcessingError{Message: "failed to list comments", Cause: err}
	}

	logger.L().Debug("Listed comments",
		zap.String("videoId", videoID),
		zap.Int("count", len(comments)),
	)

	return comments, nil
}

// AddComment validates req and appends a comment to videoID. The video does not have to exist.
func (s *VideoService) AddComment(ctx context.Context, videoID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := s.validator.ValidateComment(req); err != nil {
		logger.L().Warn("Comment validation failed",
			zap.Error(err),
			zap.String("videoId", videoID),
		)
		return nil, &ValidationError{Message: err.Error()}
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = AnonymousAuthor
	}

	comment := models.Comment{
		Author:    author,
		Avatar:    models.DefaultCommentAvatar,
		Content:   req.Content,
		Timestamp: JustNow,
		Likes:     0,
	}

	created, err := s.comments.Append(ctx, videoID, comment)
	if err != nil {
		return nil, &ProcessingError{Message: "failed to store comment", Cause: err}
	}

	logger.L().Info("Comment added",
		zap.String("videoId", videoID),
		zap.String("commentId", created.ID),
	)

	if s.metrics != nil {
		s.metrics.CommentsCreated.Inc()
	}

	event := newActivityEvent(EventCommentCreated, videoID)
	event.CommentID = created.ID
	event.Author = created.Author
	s.publish(ctx, event)

	return created, nil
}

// publish never fails the caller: the write has already happened.
func (s *VideoService) publish(ctx context.Context, event *ActivityEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	outcome := "ok"
	if err := s.publisher.Publish(ctx, event); err != nil {
		outcome = "error"
		logger.L().Warn("Failed to publish activity event",
			zap.Error(err),
			zap.String("eventId", event.ID.String()),
			zap.String("type", string(event.Type)),
		)
	}

	if s.metrics != nil {
		s.metrics.EventsPublished.WithLabelValues(string(event.Type), outcome).Inc()
	}
}

// Custom errors

// ValidationError represents a rejected write request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError represents a lookup for an id that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// ProcessingError represents an unexpected failure while serving a request.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ProcessingError struct {
	Message string
	Cause   error
}

func (e *ProcessingError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}
