package service

import (
	"fmt"
	"io"

	"github.com/forumhub-dev/forumhub/internal/domain"
	"github.com/forumhub-dev/forumhub/internal/logger"
)

// MediaStorage persists uploaded files and serves them back by name.
type MediaStorage interface {
	Save(data io.Reader, originalFilename string) (string, error)
	Read(name string) (io.ReadCloser, error)
}

type MediaService interface {
	Save(file *domain.PendingFile) (string, error)
	Open(name string) (io.ReadCloser, error)
}

type Media struct {
	storage MediaStorage
}

func NewMedia(storage MediaStorage) *Media {
	return &Media{storage}
}

// Save writes an uploaded file to media storage and returns its public
// relative path. Any write failure surfaces as an internal error carrying
// the underlying cause.
func (m *Media) Save(file *domain.PendingFile) (string, error) {
	path, err := m.storage.Save(file.Data, file.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	if file.ImageWidth != nil && file.ImageHeight != nil {
		logger.Log.Debug("saved image upload",
			"path", path, "width", *file.ImageWidth, "height", *file.ImageHeight)
	}
	return path, nil
}

func (m *Media) Open(name string) (io.ReadCloser, error) {
	return m.storage.Read(name)
}
