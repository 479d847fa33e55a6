package service

import (
	"github.com/forumhub-dev/forumhub/internal/domain"
	"github.com/forumhub-dev/forumhub/internal/service/utils"
)

type ThreadService interface {
	Create(data domain.ThreadCreationData, image *domain.PendingFile) (domain.Thread, error)
	Get(id domain.ThreadId) (domain.CompleteThread, error)
	List() ([]domain.Thread, error)
	Delete(id domain.ThreadId) error
}

type Thread struct {
	storage ThreadStorage
	media   MediaService
}

type ThreadStorage interface {
	CreateThread(data domain.ThreadCreationData) (domain.Thread, error)
	GetThread(id domain.ThreadId) (domain.CompleteThread, error)
	ListThreads() ([]domain.Thread, error)
	DeleteThread(id domain.ThreadId) error
}

func NewThread(storage ThreadStorage, media MediaService) *Thread {
	return &Thread{storage, media}
}

// Create saves the optional image first; a failed save fails the whole
// request before any row is inserted. The thread and its initial post are
// inserted by the storage layer in one transaction.
func (s *Thread) Create(data domain.ThreadCreationData, image *domain.PendingFile) (domain.Thread, error) {
	data.Title = utils.SanitizeText(data.Title)
	data.Creator = utils.SanitizeText(data.Creator)
	data.InitialText = utils.SanitizeText(data.InitialText)

	if image != nil {
		path, err := s.media.Save(image)
		if err != nil {
			return domain.Thread{}, err
		}
		data.Image = &path
	}

	return s.storage.CreateThread(data)
}

func (s *Thread) Get(id domain.ThreadId) (domain.CompleteThread, error) {
	return s.storage.GetThread(id)
}

func (s *Thread) List() ([]domain.Thread, error) {
	return s.storage.ListThreads()
}

func (s *Thread) Delete(id domain.ThreadId) error {
	return s.storage.DeleteThread(id)
}
