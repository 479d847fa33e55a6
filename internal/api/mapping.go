package api

import "github.com/forumhub-dev/forumhub/internal/domain"

// Explicit storage-record -> wire-model mapping. Keeps the storage layer
// swappable without touching the API contract.

func NewThreadResponse(t domain.Thread) ThreadResponse {
	return ThreadResponse{
		Id:           t.Id,
		Title:        t.Title,
		Creator:      t.Creator,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		LastActivity: t.LastActivity,
		ViewCount:    t.ViewCount,
		ReplyCount:   t.ReplyCount,
	}
}

func NewThreadListResponse(threads []domain.Thread) []ThreadResponse {
	out := make([]ThreadResponse, 0, len(threads))
	for _, t := range threads {
		out = append(out, NewThreadResponse(t))
	}
	return out
}

func NewCompleteThreadResponse(t domain.CompleteThread) CompleteThreadResponse {
	return CompleteThreadResponse{
		ThreadResponse: NewThreadResponse(t.Thread),
		Posts:          NewPostListResponse(t.Posts),
		Documents:      NewDocumentListResponse(t.Documents),
	}
}

func NewPostResponse(p domain.Post) PostResponse {
	return PostResponse{
		Id:            p.Id,
		ThreadId:      p.ThreadId,
		Author:        p.Author,
		Text:          p.Text,
		Image:         p.Image,
		Time:          p.Time,
		Edited:        p.Edited,
		Seen:          p.Seen,
		ViewCount:     p.ViewCount,
		LastViewed:    p.LastViewed,
		IsInitialPost: p.IsInitialPost,
	}
}

func NewPostListResponse(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}

func NewDocumentResponse(d domain.Document) DocumentResponse {
	return DocumentResponse{
		Id:         d.Id,
		ThreadId:   d.ThreadId,
		Title:      d.Title,
		Content:    d.Content,
		Type:       d.Type,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		ViewCount:  d.ViewCount,
		LastViewed: d.LastViewed,
	}
}

func NewDocumentListResponse(docs []domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, NewDocumentResponse(d))
	}
	return out
}

// NewDocumentMapResponse is the thread-scoped document listing: a mapping
// from document id to document.
func NewDocumentMapResponse(docs []domain.Document) map[string]DocumentResponse {
	out := make(map[string]DocumentResponse, len(docs))
	for _, d := range docs {
		out[d.Id] = NewDocumentResponse(d)
	}
	return out
}
