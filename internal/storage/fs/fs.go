package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
	"github.com/forumhub-dev/forumhub/internal/service"
)

// PublicPrefix is the public-facing path prefix for stored uploads.
const PublicPrefix = "/uploads/"

type Storage struct {
	rootPath string
}

// Ensure Storage struct implements the interface at compile time.
var _ service.MediaStorage = (*Storage)(nil)

func New(rootPath string) (*Storage, error) {
	// Use filepath.Clean to prevent path traversal issues like "uploads/../"
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", p, err)
	}

	return &Storage{rootPath: p}, nil
}

// Save writes an uploaded stream under a random unique name that keeps the
// original filename's extension, and returns the public relative path.
// Collisions are statistically negligible; no collision check is performed.
func (s *Storage) Save(data io.Reader, originalFilename string) (string, error) {
	// Clean the extension to prevent shenanigans like ".jpg/../../foo.txt".
	ext := filepath.Ext(filepath.Clean(originalFilename))
	name := uuid.New().String() + ext
	fullPath := filepath.Join(s.rootPath, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		// If the copy fails, clean up the partial file. Best effort.
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}

	return PublicPrefix + name, nil
}

// Read opens a stored upload by its generated name.
func (s *Storage) Read(name string) (io.ReadCloser, error) {
	// Stored names are flat; anything path-like is a traversal attempt.
	if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid file name", StatusCode: 400}
	}

	file, err := os.Open(filepath.Join(s.rootPath, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, internal_errors.NotFound("File")
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}
