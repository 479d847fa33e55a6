package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/forumhub-dev/forumhub/internal/config"
	"github.com/forumhub-dev/forumhub/internal/logger"
	"github.com/forumhub-dev/forumhub/internal/service"
)

// HealthChecker reports storage readiness.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread   service.ThreadService
	post     service.PostService
	document service.DocumentService
	media    service.MediaService
	health   HealthChecker
	cfg      *config.Config
}

func New(thread service.ThreadService, post service.PostService, document service.DocumentService, media service.MediaService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{thread, post, document, media, health, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
