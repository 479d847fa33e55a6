package pg

import (
	"context"
	"fmt"

	"github.com/forumhub-dev/forumhub/internal/domain"
	"github.com/forumhub-dev/forumhub/internal/logger"
)

// Posts cascade at the engine level. Documents deliberately carry no foreign
// key: document creation accepts dangling thread ids, so their cascade is an
// explicit statement in DeleteThread instead.
const schema = `
CREATE TABLE IF NOT EXISTS threads (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	creator TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	last_activity TIMESTAMPTZ NOT NULL DEFAULT now(),
	view_count INTEGER NOT NULL DEFAULT 0,
	reply_count INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS posts (
	id BIGSERIAL PRIMARY KEY,
	thread_id BIGINT NOT NULL REFERENCES threads(id) ON DELETE CASCADE,
	author TEXT NOT NULL,
	text TEXT NOT NULL,
	image TEXT,
	time TIMESTAMPTZ NOT NULL DEFAULT now(),
	edited BOOLEAN NOT NULL DEFAULT FALSE,
	seen BOOLEAN NOT NULL DEFAULT FALSE,
	view_count INTEGER NOT NULL DEFAULT 0,
	last_viewed TIMESTAMPTZ,
	is_initial_post BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS posts_thread_time_idx ON posts (thread_id, time);
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	thread_id BIGINT NOT NULL,
	title TEXT NOT NULL,
	content JSONB NOT NULL,
	type TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	view_count INTEGER NOT NULL DEFAULT 0,
	last_viewed TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS documents_thread_idx ON documents (thread_id);
`

// seedPosts is the static seed list applied to an empty database. Each entry
// becomes a thread with a single initial system post. Empty by default; kept
// as an extension point.
var seedPosts = []struct {
	Text  string
	Image *string
}{}

// Bootstrap ensures the schema exists and applies one-time seed data when
// the database is empty.
func (s *Storage) Bootstrap(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if s.cfg.Public.SeedOnEmpty {
		if err := s.seed(ctx); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}
	return nil
}

// seedTitle derives a thread title from the seed text, truncated to 50
// characters. Slices runes, not bytes, so multi-byte text stays valid UTF-8.
func seedTitle(text string) string {
	if runes := []rune(text); len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return text
}

func (s *Storage) seed(ctx context.Context) error {
	var threadCount, postCount int
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM threads").Scan(&threadCount); err != nil {
		return err
	}
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM posts").Scan(&postCount); err != nil {
		return err
	}
	if threadCount != 0 || postCount != 0 {
		return nil
	}

	for _, seed := range seedPosts {
		if _, err := s.CreateThread(domain.ThreadCreationData{
			Title:       seedTitle(seed.Text),
			Creator:     domain.AuthorSystem,
			InitialText: seed.Text,
			Image:       seed.Image,
		}); err != nil {
			return err
		}
	}
	if len(seedPosts) > 0 {
		logger.Log.Info("seeded empty database", "threads", len(seedPosts))
	}
	return nil
}
