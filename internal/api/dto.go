package api

import (
	"time"

	"github.com/forumhub-dev/forumhub/internal/domain"
)

// Request DTOs

// CreatePostRequest is the structured post payload. It doubles as the post
// update payload: updates overwrite every client-writable field.
type CreatePostRequest struct {
	Text  string  `json:"text" validate:"required"`
	Image *string `json:"image,omitempty"`
}

// DocumentRequest is the document payload for both create and full replace.
// Content is a pointer so a missing or null field fails validation while an
// explicit empty string passes.
type DocumentRequest struct {
	Title    string                  `json:"title" validate:"required"`
	ThreadId int64                   `json:"thread_id" validate:"required"`
	Content  *domain.DocumentContent `json:"content" validate:"required"`
	Type     string                  `json:"type" validate:"required"`
}

// Response DTOs

type ThreadResponse struct {
	Id           int64     `json:"id"`
	Title        string    `json:"title"`
	Creator      string    `json:"creator"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastActivity time.Time `json:"last_activity"`
	ViewCount    int       `json:"view_count"`
	ReplyCount   int       `json:"reply_count"`
}

// CompleteThreadResponse is the single-thread view with full post and
// document collections.
type CompleteThreadResponse struct {
	ThreadResponse
	Posts     []PostResponse     `json:"posts"`
	Documents []DocumentResponse `json:"documents"`
}

type PostResponse struct {
	Id            int64      `json:"id"`
	ThreadId      int64      `json:"thread_id"`
	Author        string     `json:"author"`
	Text          string     `json:"text"`
	Image         *string    `json:"image"`
	Time          time.Time  `json:"time"`
	Edited        bool       `json:"edited"`
	Seen          bool       `json:"seen"`
	ViewCount     int        `json:"view_count"`
	LastViewed    *time.Time `json:"last_viewed"`
	IsInitialPost bool       `json:"is_initial_post"`
}

type DocumentResponse struct {
	Id         string                 `json:"id"`
	ThreadId   int64                  `json:"thread_id"`
	Title      string                 `json:"title"`
	Content    domain.DocumentContent `json:"content"`
	Type       string                 `json:"type"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
	ViewCount  int                    `json:"view_count"`
	LastViewed *time.Time             `json:"last_viewed"`
}

type ConfirmationResponse struct {
	Message string `json:"message"`
}

type UploadResponse struct {
	Filename string `json:"filename"`
}
