package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

const postColumns = "id, thread_id, author, text, image, time, edited, seen, view_count, last_viewed, is_initial_post"

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.Id, &p.ThreadId, &p.Author, &p.Text, &p.Image, &p.Time,
		&p.Edited, &p.Seen, &p.ViewCount, &p.LastViewed, &p.IsInitialPost,
	)
	return p, err
}

// CreatePost inserts the post and bumps the parent thread's reply counter
// and activity timestamp in the same transaction. A missing thread surfaces
// as NotFound.
func (s *Storage) CreatePost(data domain.PostCreationData) (domain.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdTs := time.Now().UTC().Round(time.Microsecond) // database rounds to microsecond anyway

	var replyCount int
	err = tx.QueryRow(`
        UPDATE threads
        SET reply_count = reply_count + 1, last_activity = $1, updated_at = $1
        WHERE id = $2
        RETURNING reply_count
    `, createdTs, data.ThreadId).Scan(&replyCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Thread")
		}
		return domain.Post{}, fmt.Errorf("failed to bump thread: %w", err)
	}

	post, err := scanPost(tx.QueryRow(fmt.Sprintf(`
        INSERT INTO posts (thread_id, author, text, image, time, is_initial_post)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING %s
    `, postColumns), data.ThreadId, data.Author, data.Text, data.Image, createdTs, data.IsInitialPost))
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Post{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return post, nil
}

// GetPost marks the post seen, bumps its view counter and stamps last_viewed,
// committing the side effects with the read.
func (s *Storage) GetPost(id domain.PostId) (domain.Post, error) {
	post, err := scanPost(s.db.QueryRow(fmt.Sprintf(`
        UPDATE posts
        SET view_count = view_count + 1, seen = TRUE, last_viewed = now()
        WHERE id = $1
        RETURNING %s
    `, postColumns), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post")
		}
		return domain.Post{}, fmt.Errorf("failed to fetch post: %w", err)
	}
	return post, nil
}

// ListPosts returns a thread's posts in chronological order. An unknown
// thread id yields an empty list, not an error.
func (s *Storage) ListPosts(threadId domain.ThreadId) ([]domain.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	posts, err := listPosts(tx, threadId)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return posts, nil
}

func listPosts(tx *sql.Tx, threadId domain.ThreadId) ([]domain.Post, error) {
	rows, err := tx.Query(fmt.Sprintf(`
        SELECT %s FROM posts WHERE thread_id = $1 ORDER BY time, id
    `, postColumns), threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}

// UpdatePost overwrites the client-writable fields and marks the post
// edited, whether or not the values changed.
func (s *Storage) UpdatePost(id domain.PostId, upd domain.PostUpdateData) (domain.Post, error) {
	post, err := scanPost(s.db.QueryRow(fmt.Sprintf(`
        UPDATE posts
        SET text = $2, image = $3, edited = TRUE
        WHERE id = $1
        RETURNING %s
    `, postColumns), id, upd.Text, upd.Image))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post")
		}
		return domain.Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// DeletePost hard-deletes the post. The parent thread's reply_count is left
// untouched; counters never decrease.
func (s *Storage) DeletePost(id domain.PostId) error {
	result, err := s.db.Exec("DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Post")
	}
	return nil
}
