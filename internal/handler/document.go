package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/domain"
	"github.com/forumhub-dev/forumhub/internal/utils"
)

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var body api.DocumentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	doc, err := h.document.Create(domain.DocumentData{
		Title:    body.Title,
		ThreadId: body.ThreadId,
		Content:  *body.Content,
		Type:     body.Type,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewDocumentResponse(doc))
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.document.Get(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewDocumentResponse(doc))
}

// ListDocuments returns a mapping from document id to document for all
// documents attached to the thread.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(chi.URLParam(r, "id"), "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	docs, err := h.document.ListByThread(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewDocumentMapResponse(docs))
}

// UpdateDocument performs a full replace of the document's client-writable
// fields.
func (h *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var body api.DocumentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	doc, err := h.document.Update(chi.URLParam(r, "id"), domain.DocumentData{
		Title:    body.Title,
		ThreadId: body.ThreadId,
		Content:  *body.Content,
		Type:     body.Type,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewDocumentResponse(doc))
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.document.Delete(chi.URLParam(r, "id")); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ConfirmationResponse{Message: "Document deleted"})
}
