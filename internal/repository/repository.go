// Package repository provides the in-memory video and comment tables.
package repository

import (
	"context"
	"errors"

	"github.com/vidclone/video-api-go/internal/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// VideoRepository is the ordered video table.
type VideoRepository interface {
	// List returns all videos in insertion order, or only those whose title, description
	// or channel name contains filter (case-insensitive) when filter is not blank.
	List(ctx context.Context, filter string) ([]models.Video, error)
	GetByID(ctx context.Context, id string) (*models.Video, error)
	// Append assigns the next id to video and stores it at the end of the table.
	Append(ctx context.Context, video models.Video) (*models.Video, error)
	Count() int
}

// CommentRepository maps a video id to its ordered comments.
type CommentRepository interface {
	// ListByVideo never fails for an unknown video; it returns an empty slice.
	ListByVideo(ctx context.Context, videoID string) ([]models.Comment, error)
	// Append assigns the next per-video id to comment and stores it.
	Append(ctx context.Context, videoID string, comment models.Comment) (*models.Comment, error)
	Count() int
}
