package domain

import "time"

type Post struct {
	Id            PostId
	ThreadId      ThreadId
	Author        string
	Text          string
	Image         *string
	Time          time.Time
	Edited        bool
	Seen          bool
	ViewCount     int
	LastViewed    *time.Time
	IsInitialPost bool
}

type PostCreationData struct {
	ThreadId      ThreadId
	Author        string
	Text          string
	Image         *string
	IsInitialPost bool
}

// PostUpdateData overwrites every client-writable field of a post.
type PostUpdateData struct {
	Text  string
	Image *string
}
