package handler

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/forumhub-dev/forumhub/internal/api"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
	"github.com/forumhub-dev/forumhub/internal/logger"
	"github.com/forumhub-dev/forumhub/internal/utils"
	"github.com/forumhub-dev/forumhub/internal/validation"
)

// Upload is the general-purpose upload endpoint, independent of thread and
// post creation.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, err := h.parseForm(w, r); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{
			Message:    "Required form fields missing: file",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	pending, err := validation.OpenUpload(files[0])
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if closer, ok := pending.Data.(io.Closer); ok {
		defer closer.Close()
	}

	path, err := h.media.Save(pending)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.UploadResponse{Filename: path})
}

// ServeUpload streams a stored upload back, read-only.
func (h *Handler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	file, err := h.media.Open(name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	defer file.Close()

	if mimeType := mime.TypeByExtension(filepath.Ext(name)); mimeType != "" {
		w.Header().Set("Content-Type", mimeType)
	}
	if _, err := io.Copy(w, file); err != nil {
		logger.Log.Error("failed to stream upload", "name", name, "error", err)
	}
}
