package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/domain"
	"github.com/forumhub-dev/forumhub/internal/utils"
)

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewThreadListResponse(threads))
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "id"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	thread, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewCompleteThreadResponse(thread))
}

// CreateThread handles the multipart creation form: title, creator,
// initial_post and an optional image file.
func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseForm(w, r, "title", "creator", "initial_post")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	image, cleanup, err := h.imageFromForm(r, "image")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	defer cleanup()

	thread, err := h.thread.Create(domain.ThreadCreationData{
		Title:       form["title"],
		Creator:     form["creator"],
		InitialText: form["initial_post"],
	}, image)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewThreadResponse(thread))
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "id"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.thread.Delete(threadId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ConfirmationResponse{Message: "Thread deleted"})
}
