package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

const documentColumns = "id, thread_id, title, content, type, created_at, updated_at, view_count, last_viewed"

func scanDocument(row interface{ Scan(...any) error }) (domain.Document, error) {
	var d domain.Document
	err := row.Scan(
		&d.Id, &d.ThreadId, &d.Title, &d.Content, &d.Type,
		&d.CreatedAt, &d.UpdatedAt, &d.ViewCount, &d.LastViewed,
	)
	return d, err
}

// CreateDocument inserts a document under a fresh server-generated id.
// The referenced thread is not checked; dangling thread ids are accepted.
func (s *Storage) CreateDocument(data domain.DocumentData) (domain.Document, error) {
	id := uuid.NewString()
	doc, err := scanDocument(s.db.QueryRow(fmt.Sprintf(`
        INSERT INTO documents (id, thread_id, title, content, type)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING %s
    `, documentColumns), id, data.ThreadId, data.Title, data.Content, data.Type))
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to insert document: %w", err)
	}
	return doc, nil
}

// GetDocument bumps the view counter and stamps last_viewed, committing the
// side effects with the read.
func (s *Storage) GetDocument(id domain.DocumentId) (domain.Document, error) {
	doc, err := scanDocument(s.db.QueryRow(fmt.Sprintf(`
        UPDATE documents
        SET view_count = view_count + 1, last_viewed = now()
        WHERE id = $1
        RETURNING %s
    `, documentColumns), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Document{}, internal_errors.NotFound("Document")
		}
		return domain.Document{}, fmt.Errorf("failed to fetch document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns all documents attached to a thread. No existence
// check on the thread; unknown ids yield an empty result.
func (s *Storage) ListDocuments(threadId domain.ThreadId) ([]domain.Document, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	docs, err := listDocuments(tx, threadId)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return docs, nil
}

func listDocuments(tx *sql.Tx, threadId domain.ThreadId) ([]domain.Document, error) {
	rows, err := tx.Query(fmt.Sprintf(`
        SELECT %s FROM documents WHERE thread_id = $1 ORDER BY created_at, id
    `, documentColumns), threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return docs, nil
}

// UpdateDocument performs a full replace of the client-writable fields and
// refreshes updated_at.
func (s *Storage) UpdateDocument(id domain.DocumentId, data domain.DocumentData) (domain.Document, error) {
	doc, err := scanDocument(s.db.QueryRow(fmt.Sprintf(`
        UPDATE documents
        SET title = $2, thread_id = $3, content = $4, type = $5, updated_at = now()
        WHERE id = $1
        RETURNING %s
    `, documentColumns), id, data.Title, data.ThreadId, data.Content, data.Type))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Document{}, internal_errors.NotFound("Document")
		}
		return domain.Document{}, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}

func (s *Storage) DeleteDocument(id domain.DocumentId) error {
	result, err := s.db.Exec("DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Document")
	}
	return nil
}
