package validation

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vidclone/video-api-go/internal/config"
	"github.com/vidclone/video-api-go/internal/models"
)

const maxAuthorLength = 100

// Messages returned to clients for missing required fields.
var (
	ErrTitleRequired   = errors.New("Video title is required")
	ErrContentRequired = errors.New("Comment content is required")
)

type Validator struct {
	maxTitleLength       int
	maxDescriptionLength int
	maxCommentLength     int
}

func New(cfg config.ValidationConfig) *Validator {
	return &Validator{
		maxTitleLength:       cfg.MaxTitleLength,
		maxDescriptionLength: cfg.MaxDescriptionLength,
		maxCommentLength:     cfg.MaxCommentLength,
	}
}

func (v *Validator) ValidateUpload(req *models.UploadVideoRequest) error {
	if req == nil || req.Title == "" {
		return ErrTitleRequired
	}

	if err := checkLength("title", req.Title, v.maxTitleLength); err != nil {
		return err
	}

	return checkLength("description", req.Description, v.maxDescriptionLength)
}

func (v *Validator) ValidateComment(req *models.CreateCommentRequest) error {
	if req == nil || req.Content == "" {
		return ErrContentRequired
	}

	if err := checkLength("content", req.Content, v.maxCommentLength); err != nil {
		return err
	}

	return checkLength("author", req.Author, maxAuthorLength)
}

// checkLength counts runes, not bytes. limit <= 0 disables the check.
func checkLength(field, value string, limit int) error {
	if limit <= 0 {
		return nil
	}
	if n := utf8.RuneCountInString(value); n > limit {
		return fmt.Errorf("%s exceeds maximum length of %d characters", field, limit)
	}
	return nil
}
