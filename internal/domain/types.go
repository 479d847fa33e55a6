package domain

type (
	ThreadId   = int64
	PostId     = int64
	DocumentId = string
)

// Authors assigned by the post creation routes. The initial post of a thread
// carries the thread creator's name instead.
const (
	AuthorUser   = "user"
	AuthorSystem = "system"
)
