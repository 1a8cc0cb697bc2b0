package repository

import "github.com/vidclone/video-api-go/internal/models"

const (
	sampleVideoSmall = "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4"
	sampleVideoLarge = "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_2mb.mp4"
)

// SeedVideos returns the sample catalog served on a fresh start.
func SeedVideos() []models.Video {
	return []models.Video{
		{
			ID:          "1",
			Title:       "Building a Full-Stack App with Next.js and Python",
			Description: "Learn how to create a modern web application using Next.js for the frontend and Python Flask for the backend API. This comprehensive tutorial covers setup, development, and deployment.",
			Thumbnail:   models.DefaultThumbnail,
			Duration:    "15:42",
			Views:       "125K",
			UploadDate:  "2 days ago",
			Channel:     models.Channel{Name: "TechTutorials", Avatar: models.DefaultChannelAvatar, Subscribers: "250K"},
			VideoURL:    sampleVideoSmall,
		},
		{
			ID:          "2",
			Title:       "Python Flask REST API Tutorial",
			Description: "Complete guide to building REST APIs with Python Flask, including authentication, database integration, and best practices for scalable applications.",
			Thumbnail:   models.DefaultThumbnail,
			Duration:    "22:15",
			Views:       "89K",
			UploadDate:  "5 days ago",
			Channel:     models.Channel{Name: "CodeMaster", Avatar: models.DefaultChannelAvatar, Subscribers: "180K"},
			VideoURL:    sampleVideoLarge,
		},
		{
			ID:          "3",
			Title:       "React Hooks Deep Dive",
			Description: "Understanding React Hooks with practical examples and best practices for modern React development. Covers useState, useEffect, custom hooks and more.",
			Thumbnail:   models.DefaultThumbnail,
			Duration:    "18:30",
			Views:       "67K",
			UploadDate:  "1 week ago",
			Channel:     models.Channel{Name: "ReactPro", Avatar: models.DefaultChannelAvatar, Subscribers: "95K"},
			VideoURL:    sampleVideoSmall,
		},
		{
			ID:          "4",
			Title:       "Database Design Fundamentals",
			Description: "Learn the basics of database design, normalization, and best practices for scalable applications. Perfect for beginners and intermediate developers.",
			Thumbnail:   models.DefaultThumbnail,
			Duration:    "25:18",
			Views:       "156K",
			UploadDate:  "3 days ago",
			Channel:     models.Channel{Name: "DataScience Hub", Avatar: models.DefaultChannelAvatar, Subscribers: "320K"},
			VideoURL:    sampleVideoLarge,
		},
		{
			ID:          "5",
			Title:       "JavaScript ES6+ Features Explained",
			Description: "Modern JavaScript features including arrow functions, destructuring, async/await, and more. Essential for every web developer.",
			Thumbnail:   models.DefaultThumbnail,
			Duration:    "19:45",
			Views:       "203K",
			UploadDate:  "1 day ago",
			Channel:     models.Channel{Name: "JS Mastery", Avatar: models.DefaultChannelAvatar, Subscribers: "450K"},
			VideoURL:    sampleVideoSmall,
		},
	}
}

// SeedComments returns the sample comments keyed by video id.
func SeedComments() map[string][]models.Comment {
	return map[string][]models.Comment{
		"1": {
			{
				ID:        "c1",
				Author:    "DevEnthusiast",
				Avatar:    models.DefaultCommentAvatar,
				Content:   "Great tutorial! Really helped me understand the integration between Next.js and Python. The step-by-step approach is perfect.",
				Timestamp: "2 hours ago",
				Likes:     15,
			},
			{
				ID:        "c2",
				Author:    "CodeNewbie",
				Avatar:    models.DefaultCommentAvatar,
				Content:   "Can you make a follow-up video about deployment? I'd love to see how to deploy this to production.",
				Timestamp: "5 hours ago",
				Likes:     8,
			},
			{
				ID:        "c3",
				Author:    "FullStackDev",
				Avatar:    models.DefaultCommentAvatar,
				Content:   "This is exactly what I was looking for! The Flask integration is so clean.",
				Timestamp: "1 day ago",
				Likes:     23,
			},
		},
		"2": {
			{
				ID:        "c4",
				Author:    "PythonLover",
				Avatar:    models.DefaultCommentAvatar,
				Content:   "Flask is such a great framework for APIs. Thanks for the detailed explanation!",
				Timestamp: "3 hours ago",
				Likes:     12,
			},
		},
	}
}
