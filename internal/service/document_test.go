package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumhub-dev/forumhub/internal/domain"
)

type mockDocumentStorage struct {
	createDocumentFunc func(data domain.DocumentData) (domain.Document, error)
	updateDocumentFunc func(id domain.DocumentId, data domain.DocumentData) (domain.Document, error)
}

func (m *mockDocumentStorage) CreateDocument(data domain.DocumentData) (domain.Document, error) {
	if m.createDocumentFunc != nil {
		return m.createDocumentFunc(data)
	}
	return domain.Document{Id: "doc-1", ThreadId: data.ThreadId, Title: data.Title, Content: data.Content, Type: data.Type}, nil
}

func (m *mockDocumentStorage) GetDocument(id domain.DocumentId) (domain.Document, error) {
	return domain.Document{Id: id}, nil
}

func (m *mockDocumentStorage) ListDocuments(threadId domain.ThreadId) ([]domain.Document, error) {
	return nil, nil
}

func (m *mockDocumentStorage) UpdateDocument(id domain.DocumentId, data domain.DocumentData) (domain.Document, error) {
	if m.updateDocumentFunc != nil {
		return m.updateDocumentFunc(id, data)
	}
	return domain.Document{Id: id, Title: data.Title, Content: data.Content, Type: data.Type}, nil
}

func (m *mockDocumentStorage) DeleteDocument(id domain.DocumentId) error {
	return nil
}

func TestDocumentCreate(t *testing.T) {
	t.Run("dangling thread id is not rejected", func(t *testing.T) {
		s := NewDocument(&mockDocumentStorage{})

		doc, err := s.Create(domain.DocumentData{
			Title:    "Orphan",
			ThreadId: 424242,
			Content:  domain.TextContent("no such thread"),
			Type:     "text",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(424242), doc.ThreadId)
	})

	t.Run("title is sanitized, content is not", func(t *testing.T) {
		storage := &mockDocumentStorage{
			createDocumentFunc: func(data domain.DocumentData) (domain.Document, error) {
				assert.Equal(t, "clean title", data.Title)
				assert.Equal(t, "<raw> content stays", data.Content.Text)
				return domain.Document{}, nil
			},
		}
		s := NewDocument(storage)

		_, err := s.Create(domain.DocumentData{
			Title:   "<b>clean title</b>",
			Content: domain.TextContent("<raw> content stays"),
			Type:    "text",
		})
		require.NoError(t, err)
	})

	t.Run("grid content passes through", func(t *testing.T) {
		grid := [][]string{{"a", "b"}, {"c", "d"}}
		s := NewDocument(&mockDocumentStorage{})

		doc, err := s.Create(domain.DocumentData{Title: "t", ThreadId: 1, Content: domain.GridContent(grid), Type: "table"})
		require.NoError(t, err)
		require.True(t, doc.Content.IsGrid)
		assert.Equal(t, grid, doc.Content.Grid)
	})
}

func TestDocumentUpdate(t *testing.T) {
	storage := &mockDocumentStorage{
		updateDocumentFunc: func(id domain.DocumentId, data domain.DocumentData) (domain.Document, error) {
			assert.Equal(t, "doc-1", id)
			assert.Equal(t, "new title", data.Title)
			return domain.Document{Id: id, Title: data.Title}, nil
		},
	}
	s := NewDocument(storage)

	doc, err := s.Update("doc-1", domain.DocumentData{Title: "<u>new title</u>", ThreadId: 1, Type: "text"})
	require.NoError(t, err)
	assert.Equal(t, "new title", doc.Title)
}
