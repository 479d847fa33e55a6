package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/domain"
	"github.com/forumhub-dev/forumhub/internal/utils"
)

// CreatePost handles the multipart creation form: text and an optional image
// file. The author is always "user".
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "id"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := h.parseForm(w, r, "text")
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

	post, err := h.post.Create(threadId, form["text"], image)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewPostResponse(post))
}

// CreateSystemPost handles the structured creation route: a JSON body with
// text and an optional already-stored image path. The author is always
// "system".
func (h *Handler) CreateSystemPost(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "id"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.CreateSystem(threadId, body.Text, body.Image)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewPostResponse(post))
}

// ListPosts returns a thread's posts in chronological order. An unknown
// thread id yields an empty list rather than a 404.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "id"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	posts, err := h.post.ListByThread(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewPostListResponse(posts))
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIntParam(chi.URLParam(r, "id"), "post ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.post.Get(postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewPostResponse(post))
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIntParam(chi.URLParam(r, "id"), "post ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Update(postId, domain.PostUpdateData{Text: body.Text, Image: body.Image})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewPostResponse(post))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIntParam(chi.URLParam(r, "id"), "post ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.post.Delete(postId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ConfirmationResponse{Message: "Post deleted"})
}
