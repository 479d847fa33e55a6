package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

const threadColumns = "id, title, creator, created_at, updated_at, last_activity, view_count, reply_count"

func scanThread(row interface{ Scan(...any) error }) (domain.Thread, error) {
	var t domain.Thread
	err := row.Scan(
		&t.Id, &t.Title, &t.Creator, &t.CreatedAt, &t.UpdatedAt,
		&t.LastActivity, &t.ViewCount, &t.ReplyCount,
	)
	return t, err
}

// CreateThread inserts the thread and its initial post in one transaction.
// The initial post carries the thread creator as author.
func (s *Storage) CreateThread(data domain.ThreadCreationData) (domain.Thread, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	thread, err := scanThread(tx.QueryRow(fmt.Sprintf(`
        INSERT INTO threads (title, creator)
        VALUES ($1, $2)
        RETURNING %s
    `, threadColumns), data.Title, data.Creator))
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	_, err = tx.Exec(`
        INSERT INTO posts (thread_id, author, text, image, time, is_initial_post)
        VALUES ($1, $2, $3, $4, $5, TRUE)
    `, thread.Id, data.Creator, data.InitialText, data.Image, thread.CreatedAt)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert initial post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return thread, nil
}

// GetThread increments the view counter and returns the thread with its full
// post and document collections. The counter bump commits with the read.
func (s *Storage) GetThread(id domain.ThreadId) (domain.CompleteThread, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.CompleteThread{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	thread, err := scanThread(tx.QueryRow(fmt.Sprintf(`
        UPDATE threads
        SET view_count = view_count + 1, updated_at = now()
        WHERE id = $1
        RETURNING %s
    `, threadColumns), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CompleteThread{}, internal_errors.NotFound("Thread")
		}
		return domain.CompleteThread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}

	posts, err := listPosts(tx, id)
	if err != nil {
		return domain.CompleteThread{}, err
	}

	documents, err := listDocuments(tx, id)
	if err != nil {
		return domain.CompleteThread{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.CompleteThread{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return domain.CompleteThread{Thread: thread, Posts: posts, Documents: documents}, nil
}

// ListThreads returns all threads, most recently active first.
func (s *Storage) ListThreads() ([]domain.Thread, error) {
	rows, err := s.db.Query(fmt.Sprintf(`
        SELECT %s FROM threads ORDER BY last_activity DESC
    `, threadColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		t, err := scanThread(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}

// DeleteThread hard-deletes the thread. Posts cascade via their foreign key;
// documents are removed explicitly in the same transaction.
func (s *Storage) DeleteThread(id domain.ThreadId) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM documents WHERE thread_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete thread documents: %w", err)
	}

	result, err := tx.Exec("DELETE FROM threads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Thread")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Storage) ThreadExists(id domain.ThreadId) (bool, error) {
	var exists bool
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check thread existence: %w", err)
	}
	return exists, nil
}
