package repository

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/vidclone/video-api-go/internal/models"
)

const commentIDPrefix = "c"

// CommentStore keeps one ordered comment sequence per video id behind a RWMutex.
type CommentStore struct {
	mu       sync.RWMutex
	byVideo  map[string][]models.Comment
	lastByID map[string]int
	total    int
}

// NewCommentStore creates a store from seed. For each video the next id continues after the
// highest "c<n>" id already present, so seeded and new ids never collide.
func NewCommentStore(seed map[string][]models.Comment) *CommentStore {
	s := &CommentStore{
		byVideo:  make(map[string][]models.Comment, len(seed)),
		lastByID: make(map[string]int, len(seed)),
	}
	for videoID, comments := range seed {
		list := make([]models.Comment, len(comments))
		copy(list, comments)
		s.byVideo[videoID] = list
		s.total += len(list)

		last := len(list)
		for _, c := range list {
			if n, ok := commentSeq(c.ID); ok && n > last {
				last = n
			}
		}
		s.lastByID[videoID] = last
	}
	return s
}

func commentSeq(id string) (int, bool) {
	if !strings.HasPrefix(id, commentIDPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, commentIDPrefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ListByVideo returns a copy of the comments for videoID, or an empty slice.
func (s *CommentStore) ListByVideo(ctx context.Context, videoID string) ([]models.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := s.byVideo[videoID]
	result := make([]models.Comment, len(comments))
	copy(result, comments)
	return result, nil
}

// Append creates the sequence for videoID on first use, overwrites comment.ID with the next
// per-video id and stores the comment.
func (s *CommentStore) Append(ctx context.Context, videoID string, comment models.Comment) (*models.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastByID[videoID]++
	comment.ID = commentIDPrefix + strconv.Itoa(s.lastByID[videoID])
	s.byVideo[videoID] = append(s.byVideo[videoID], comment)
	s.total++

	return &comment, nil
}

// Count returns the number of comments across all videos.
func (s *CommentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

var _ CommentRepository = (*CommentStore)(nil)
