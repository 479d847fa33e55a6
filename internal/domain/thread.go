package domain

import "time"

type Thread struct {
	Id           ThreadId
	Title        string
	Creator      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastActivity time.Time
	ViewCount    int
	ReplyCount   int
}

// CompleteThread is the single-thread view: the thread together with its full
// post and document collections.
type CompleteThread struct {
	Thread
	Posts     []Post
	Documents []Document
}

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title       string
	Creator     string
	InitialText string
	Image       *string // relative path of an already saved upload, or nil
}
