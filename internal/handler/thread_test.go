package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

func newTestHandler() *Handler {
	return New(&MockThreadService{}, &MockPostService{}, &MockDocumentService{}, &MockMediaService{}, &MockHealthChecker{}, testConfig())
}

func TestCreateThread(t *testing.T) {
	h := newTestHandler()
	router := testRouter(h)

	t.Run("successful request", func(t *testing.T) {
		var gotData domain.ThreadCreationData
		h.thread = &MockThreadService{
			MockCreate: func(data domain.ThreadCreationData, image *domain.PendingFile) (domain.Thread, error) {
				gotData = data
				return domain.Thread{Id: 7, Title: data.Title, Creator: data.Creator}, nil
			},
		}

		req := multipartRequest("POST", "/api/threads", map[string]string{
			"title":        "Server migration",
			"creator":      "alice",
			"initial_post": "We move on Friday.",
		})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "expected status code %d, but got %d", http.StatusOK, rr.Code)
		assert.Equal(t, "Server migration", gotData.Title)
		assert.Equal(t, "alice", gotData.Creator)
		assert.Equal(t, "We move on Friday.", gotData.InitialText)

		var resp api.ThreadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.Id)
		assert.Equal(t, "alice", resp.Creator)
	})

	t.Run("with image file", func(t *testing.T) {
		var gotImage *domain.PendingFile
		h.thread = &MockThreadService{
			MockCreate: func(data domain.ThreadCreationData, image *domain.PendingFile) (domain.Thread, error) {
				gotImage = image
				return domain.Thread{Id: 8}, nil
			},
		}

		body, contentType := multipartBody(map[string]string{
			"title":        "Photos",
			"creator":      "bob",
			"initial_post": "see attached",
		}, "image", "photo.png", []byte("not a real png"))
		req, _ := http.NewRequest("POST", "/api/threads", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "expected status code %d, but got %d", http.StatusOK, rr.Code)
		require.NotNil(t, gotImage)
		assert.Equal(t, "photo.png", gotImage.Filename)
		assert.Equal(t, "image/png", gotImage.MimeType)
	})

	t.Run("missing form fields", func(t *testing.T) {
		req := multipartRequest("POST", "/api/threads", map[string]string{"title": "only a title"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "expected status code %d, but got %d", http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "creator")
		assert.Contains(t, rr.Body.String(), "initial_post")
	})

	t.Run("disallowed image type", func(t *testing.T) {
		body, contentType := multipartBody(map[string]string{
			"title":        "t",
			"creator":      "c",
			"initial_post": "p",
		}, "image", "script.exe", []byte("MZ"))
		req, _ := http.NewRequest("POST", "/api/threads", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "expected status code %d, but got %d", http.StatusBadRequest, rr.Code)
	})
}

func TestGetThread(t *testing.T) {
	h := newTestHandler()
	router := testRouter(h)

	t.Run("successful request", func(t *testing.T) {
		now := time.Now().UTC().Round(time.Microsecond)
		h.thread = &MockThreadService{
			MockGet: func(id domain.ThreadId) (domain.CompleteThread, error) {
				assert.Equal(t, int64(42), id)
				return domain.CompleteThread{
					Thread: domain.Thread{Id: id, Title: "t", Creator: "c", CreatedAt: now, ViewCount: 3},
					Posts:  []domain.Post{{Id: 1, ThreadId: id, Author: "c", IsInitialPost: true}},
					Documents: []domain.Document{
						{Id: "doc-1", ThreadId: id, Content: domain.TextContent("notes")},
					},
				}, nil
			},
		}

		req, _ := http.NewRequest("GET", "/api/threads/42", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "expected status code %d, but got %d", http.StatusOK, rr.Code)

		var resp api.CompleteThreadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.Id)
		require.Len(t, resp.Posts, 1)
		assert.True(t, resp.Posts[0].IsInitialPost)
		require.Len(t, resp.Documents, 1)
		assert.Equal(t, "doc-1", resp.Documents[0].Id)
	})

	t.Run("thread not found", func(t *testing.T) {
		h.thread = &MockThreadService{
			MockGet: func(id domain.ThreadId) (domain.CompleteThread, error) {
				return domain.CompleteThread{}, internal_errors.NotFound("Thread")
			},
		}

		req, _ := http.NewRequest("GET", "/api/threads/999", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, "expected status code %d, but got %d", http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Thread not found")
	})

	t.Run("non-integer id", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/threads/abc", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "expected status code %d, but got %d", http.StatusBadRequest, rr.Code)
	})
}

func TestListThreads(t *testing.T) {
	h := newTestHandler()
	router := testRouter(h)

	t.Run("successful request", func(t *testing.T) {
		h.thread = &MockThreadService{
			MockList: func() ([]domain.Thread, error) {
				return []domain.Thread{{Id: 2, Title: "newer"}, {Id: 1, Title: "older"}}, nil
			},
		}

		req, _ := http.NewRequest("GET", "/api/threads", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "expected status code %d, but got %d", http.StatusOK, rr.Code)

		var resp []api.ThreadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, int64(2), resp[0].Id)
	})

	t.Run("empty list serializes as array", func(t *testing.T) {
		h.thread = &MockThreadService{
			MockList: func() ([]domain.Thread, error) { return nil, nil },
		}

		req, _ := http.NewRequest("GET", "/api/threads", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestDeleteThread(t *testing.T) {
	h := newTestHandler()
	router := testRouter(h)

	t.Run("successful request", func(t *testing.T) {
		deleted := false
		h.thread = &MockThreadService{
			MockDelete: func(id domain.ThreadId) error {
				deleted = true
				assert.Equal(t, int64(5), id)
				return nil
			},
		}

		req, _ := http.NewRequest("DELETE", "/api/threads/5", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "expected status code %d, but got %d", http.StatusOK, rr.Code)
		assert.True(t, deleted)
		assert.JSONEq(t, `{"message": "Thread deleted"}`, rr.Body.String())
	})

	t.Run("thread not found", func(t *testing.T) {
		h.thread = &MockThreadService{
			MockDelete: func(id domain.ThreadId) error {
				return internal_errors.NotFound("Thread")
			},
		}

		req, _ := http.NewRequest("DELETE", "/api/threads/999", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, "expected status code %d, but got %d", http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Thread not found")
	})
}
