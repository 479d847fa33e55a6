package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumhub-dev/forumhub/internal/config"
	"github.com/forumhub-dev/forumhub/internal/domain"
)

type MockThreadService struct {
	MockCreate func(data domain.ThreadCreationData, image *domain.PendingFile) (domain.Thread, error)
	MockGet    func(id domain.ThreadId) (domain.CompleteThread, error)
	MockList   func() ([]domain.Thread, error)
	MockDelete func(id domain.ThreadId) error
}

func (m *MockThreadService) Create(data domain.ThreadCreationData, image *domain.PendingFile) (domain.Thread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data, image)
	}
	return domain.Thread{}, nil
}

func (m *MockThreadService) Get(id domain.ThreadId) (domain.CompleteThread, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.CompleteThread{}, nil
}

func (m *MockThreadService) List() ([]domain.Thread, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return nil, nil
}

func (m *MockThreadService) Delete(id domain.ThreadId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockPostService struct {
	MockCreate       func(threadId domain.ThreadId, text string, image *domain.PendingFile) (domain.Post, error)
	MockCreateSystem func(threadId domain.ThreadId, text string, imagePath *string) (domain.Post, error)
	MockGet          func(id domain.PostId) (domain.Post, error)
	MockListByThread func(threadId domain.ThreadId) ([]domain.Post, error)
	MockUpdate       func(id domain.PostId, upd domain.PostUpdateData) (domain.Post, error)
	MockDelete       func(id domain.PostId) error
}

func (m *MockPostService) Create(threadId domain.ThreadId, text string, image *domain.PendingFile) (domain.Post, error) {
	if m.MockCreate != nil {
		return m.MockCreate(threadId, text, image)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) CreateSystem(threadId domain.ThreadId, text string, imagePath *string) (domain.Post, error) {
	if m.MockCreateSystem != nil {
		return m.MockCreateSystem(threadId, text, imagePath)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) Get(id domain.PostId) (domain.Post, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) ListByThread(threadId domain.ThreadId) ([]domain.Post, error) {
	if m.MockListByThread != nil {
		return m.MockListByThread(threadId)
	}
	return nil, nil
}

func (m *MockPostService) Update(id domain.PostId, upd domain.PostUpdateData) (domain.Post, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, upd)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) Delete(id domain.PostId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockDocumentService struct {
	MockCreate       func(data domain.DocumentData) (domain.Document, error)
	MockGet          func(id domain.DocumentId) (domain.Document, error)
	MockListByThread func(threadId domain.ThreadId) ([]domain.Document, error)
	MockUpdate       func(id domain.DocumentId, data domain.DocumentData) (domain.Document, error)
	MockDelete       func(id domain.DocumentId) error
}

func (m *MockDocumentService) Create(data domain.DocumentData) (domain.Document, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Document{}, nil
}

func (m *MockDocumentService) Get(id domain.DocumentId) (domain.Document, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Document{}, nil
}

func (m *MockDocumentService) ListByThread(threadId domain.ThreadId) ([]domain.Document, error) {
	if m.MockListByThread != nil {
		return m.MockListByThread(threadId)
	}
	return nil, nil
}

func (m *MockDocumentService) Update(id domain.DocumentId, data domain.DocumentData) (domain.Document, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, data)
	}
	return domain.Document{}, nil
}

func (m *MockDocumentService) Delete(id domain.DocumentId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockMediaService struct {
	MockSave func(file *domain.PendingFile) (string, error)
	MockOpen func(name string) (io.ReadCloser, error)
}

func (m *MockMediaService) Save(file *domain.PendingFile) (string, error) {
	if m.MockSave != nil {
		return m.MockSave(file)
	}
	return "/uploads/mock", nil
}

func (m *MockMediaService) Open(name string) (io.ReadCloser, error) {
	if m.MockOpen != nil {
		return m.MockOpen(name)
	}
	return io.NopCloser(bytes.NewReader(nil)), nil
}

type MockHealthChecker struct {
	MockPing func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

func testConfig() *config.Config {
	return config.New(config.Public{
		MaxUploadSizeBytes:    20 << 20,
		AllowedImageMimeTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	}, config.Private{})
}

// testRouter mounts the handler the same way the production router does, so
// url parameters resolve through chi.
func testRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Route("/api", func(r chi.Router) {
		r.Route("/threads", func(r chi.Router) {
			r.Get("/", h.ListThreads)
			r.Post("/", h.CreateThread)
			r.Get("/{id}", h.GetThread)
			r.Delete("/{id}", h.DeleteThread)
			r.Post("/{id}/posts", h.CreatePost)
			r.Get("/{id}/posts", h.ListPosts)
			r.Get("/{id}/documents", h.ListDocuments)
		})
		r.Post("/system/threads/{id}/posts", h.CreateSystemPost)
		r.Route("/posts", func(r chi.Router) {
			r.Get("/{id}", h.GetPost)
			r.Put("/{id}", h.UpdatePost)
			r.Delete("/{id}", h.DeletePost)
		})
		r.Route("/documents", func(r chi.Router) {
			r.Post("/", h.CreateDocument)
			r.Get("/{id}", h.GetDocument)
			r.Put("/{id}", h.UpdateDocument)
			r.Delete("/{id}", h.DeleteDocument)
		})
		r.Post("/upload", h.Upload)
		r.Get("/uploads/{name}", h.ServeUpload)
	})
	return r
}

// multipartBody builds a multipart form with the given text fields and,
// optionally, a single file part.
func multipartBody(fields map[string]string, fileField, filename string, fileData []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		writer.WriteField(k, v)
	}
	if fileField != "" {
		part, _ := writer.CreateFormFile(fileField, filename)
		part.Write(fileData)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func multipartRequest(method, target string, fields map[string]string) *http.Request {
	body, contentType := multipartBody(fields, "", "", nil)
	req, _ := http.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}
