package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/vidclone/video-api-go/internal/models"
)

// VideoStore keeps videos in insertion order behind a RWMutex.
type VideoStore struct {
	mu     sync.RWMutex
	videos []models.Video
	lastID int
}

// NewVideoStore creates a store holding seed in order. Seed ids are kept as given; new ids
// continue after the highest numeric seed id.
func NewVideoStore(seed []models.Video) *VideoStore {
	s := &VideoStore{
		videos: make([]models.Video, 0, len(seed)),
	}
	for _, v := range seed {
		s.videos = append(s.videos, v)
		if n, err := strconv.Atoi(v.ID); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
	if s.lastID < len(s.videos) {
		s.lastID = len(s.videos)
	}
	return s
}

// List returns a copy of the matching videos.
func (s *VideoStore) List(ctx context.Context, filter string) ([]models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(filter))

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Video, 0, len(s.videos))
	for _, v := range s.videos {
		if needle == "" || matches(v, needle) {
			result = append(result, v)
		}
	}
	return result, nil
}

func matches(v models.Video, needle string) bool {
	return strings.Contains(strings.ToLower(v.Title), needle) ||
		strings.Contains(strings.ToLower(v.Description), needle) ||
		strings.Contains(strings.ToLower(v.Channel.Name), needle)
}

// GetByID returns a copy of the first video with the given id.
func (s *VideoStore) GetByID(ctx context.Context, id string) (*models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.videos {
		if s.videos[i].ID == id {
			v := s.videos[i]
			return &v, nil
		}
	}
	return nil, fmt.Errorf("video %q: %w", id, ErrNotFound)
}

// Append overwrites video.ID with the next sequence number and stores the video.
func (s *VideoStore) Append(ctx context.Context, video models.Video) (*models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	video.ID = strconv.Itoa(s.lastID)
	s.videos = append(s.videos, video)

	return &video, nil
}

// Count returns the number of stored videos.
func (s *VideoStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.videos)
}

var _ VideoRepository = (*VideoStore)(nil)
