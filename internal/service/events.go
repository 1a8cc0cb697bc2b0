package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names a successful write.
type EventType string

const (
	EventVideoUploaded  EventType = "video.uploaded"
	EventCommentCreated EventType = "comment.created"
)

// ActivityEvent is published after every successful write.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ActivityEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	VideoID    string    `json:"videoId"`
	CommentID  string    `json:"commentId,omitempty"`
	Title      string    `json:"title,omitempty"`
	Author     string    `json:"author,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher delivers activity events to an external broker.
type EventPublisher interface {
	Publish(ctx context.Context, event *ActivityEvent) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *ActivityEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }

func newActivityEvent(typ EventType, videoID string) *ActivityEvent {
	return &ActivityEvent{
		ID:         uuid.New(),
		Type:       typ,
		VideoID:    videoID,
		OccurredAt: time.Now().UTC(),
	}
}
