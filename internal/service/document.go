package service

import (
	"github.com/forumhub-dev/forumhub/internal/domain"
	"github.com/forumhub-dev/forumhub/internal/service/utils"
)

type DocumentService interface {
	Create(data domain.DocumentData) (domain.Document, error)
	Get(id domain.DocumentId) (domain.Document, error)
	ListByThread(threadId domain.ThreadId) ([]domain.Document, error)
	Update(id domain.DocumentId, data domain.DocumentData) (domain.Document, error)
	Delete(id domain.DocumentId) error
}

type Document struct {
	storage DocumentStorage
}

type DocumentStorage interface {
	CreateDocument(data domain.DocumentData) (domain.Document, error)
	GetDocument(id domain.DocumentId) (domain.Document, error)
	ListDocuments(threadId domain.ThreadId) ([]domain.Document, error)
	UpdateDocument(id domain.DocumentId, data domain.DocumentData) (domain.Document, error)
	DeleteDocument(id domain.DocumentId) error
}

func NewDocument(storage DocumentStorage) *Document {
	return &Document{storage}
}

// Create inserts a document without checking that the referenced thread
// exists; the creation route accepts dangling thread ids.
func (s *Document) Create(data domain.DocumentData) (domain.Document, error) {
	data.Title = utils.SanitizeText(data.Title)
	return s.storage.CreateDocument(data)
}

func (s *Document) Get(id domain.DocumentId) (domain.Document, error) {
	return s.storage.GetDocument(id)
}

func (s *Document) ListByThread(threadId domain.ThreadId) ([]domain.Document, error) {
	return s.storage.ListDocuments(threadId)
}

func (s *Document) Update(id domain.DocumentId, data domain.DocumentData) (domain.Document, error) {
	data.Title = utils.SanitizeText(data.Title)
	return s.storage.UpdateDocument(id, data)
}

func (s *Document) Delete(id domain.DocumentId) error {
	return s.storage.DeleteDocument(id)
}
