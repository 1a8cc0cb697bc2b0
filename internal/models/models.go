// Package models contains the data models and DTOs for the video API.
package models

// Placeholder assets used for records created through the API.
const (
	DefaultThumbnail     = "/placeholder.svg?height=180&width=320"
	DefaultChannelAvatar = "/placeholder.svg?height=40&width=40"
	DefaultCommentAvatar = "/placeholder.svg?height=32&width=32"
)

// Video is a catalog entry. All display values (duration, views, uploadDate) are preformatted strings.
type Video struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    string  `json:"duration"`
	Views       string  `json:"views"`
	UploadDate  string  `json:"uploadDate"`
	Channel     Channel `json:"channel"`
	VideoURL    string  `json:"videoUrl"`
}

// Channel is embedded in every video.
type Channel struct {
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Subscribers string `json:"subscribers"`
}

// Comment belongs to exactly one video. IDs are only unique within that video.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Avatar    string `json:"avatar"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Likes     int    `json:"likes"`
}

// UploadVideoRequest is the body of POST /api/upload.
type UploadVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Channel     string `json:"channel"`
	VideoURL    string `json:"videoUrl"`
}

// CreateCommentRequest is the body of POST /api/videos/:id/comments.
type CreateCommentRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error              string   `json:"error"`
	Details            string   `json:"details,omitempty"`
	AvailableEndpoints []string `json:"available_endpoints,omitempty"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}
