package service

import (
	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
	"github.com/forumhub-dev/forumhub/internal/service/utils"
)

type PostService interface {
	Create(threadId domain.ThreadId, text string, image *domain.PendingFile) (domain.Post, error)
	CreateSystem(threadId domain.ThreadId, text string, imagePath *string) (domain.Post, error)
	Get(id domain.PostId) (domain.Post, error)
	ListByThread(threadId domain.ThreadId) ([]domain.Post, error)
	Update(id domain.PostId, upd domain.PostUpdateData) (domain.Post, error)
	Delete(id domain.PostId) error
}

type Post struct {
	storage PostStorage
	media   MediaService
}

type PostStorage interface {
	CreatePost(data domain.PostCreationData) (domain.Post, error)
	GetPost(id domain.PostId) (domain.Post, error)
	ListPosts(threadId domain.ThreadId) ([]domain.Post, error)
	UpdatePost(id domain.PostId, upd domain.PostUpdateData) (domain.Post, error)
	DeletePost(id domain.PostId) error
	ThreadExists(id domain.ThreadId) (bool, error)
}

func NewPost(storage PostStorage, media MediaService) *Post {
	return &Post{storage, media}
}

// Create handles the multipart creation route: author is always "user".
// The parent thread is checked before the image is written so a missing
// thread never leaves an orphaned file behind.
func (s *Post) Create(threadId domain.ThreadId, text string, image *domain.PendingFile) (domain.Post, error) {
	exists, err := s.storage.ThreadExists(threadId)
	if err != nil {
		return domain.Post{}, err
	}
	if !exists {
		return domain.Post{}, internal_errors.NotFound("Thread")
	}

	var imagePath *string
	if image != nil {
		path, err := s.media.Save(image)
		if err != nil {
			return domain.Post{}, err
		}
		imagePath = &path
	}

	return s.storage.CreatePost(domain.PostCreationData{
		ThreadId: threadId,
		Author:   domain.AuthorUser,
		Text:     utils.SanitizeText(text),
		Image:    imagePath,
	})
}

// CreateSystem handles the structured creation route: author is always
// "system" and the image, if any, is an already stored path.
func (s *Post) CreateSystem(threadId domain.ThreadId, text string, imagePath *string) (domain.Post, error) {
	return s.storage.CreatePost(domain.PostCreationData{
		ThreadId: threadId,
		Author:   domain.AuthorSystem,
		Text:     utils.SanitizeText(text),
		Image:    imagePath,
	})
}

func (s *Post) Get(id domain.PostId) (domain.Post, error) {
	return s.storage.GetPost(id)
}

func (s *Post) ListByThread(threadId domain.ThreadId) ([]domain.Post, error) {
	return s.storage.ListPosts(threadId)
}

func (s *Post) Update(id domain.PostId, upd domain.PostUpdateData) (domain.Post, error) {
	upd.Text = utils.SanitizeText(upd.Text)
	return s.storage.UpdatePost(id, upd)
}

func (s *Post) Delete(id domain.PostId) error {
	return s.storage.DeletePost(id)
}
