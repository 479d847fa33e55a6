package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forumhub-dev/forumhub/internal/middleware/metrics"
	"github.com/forumhub-dev/forumhub/internal/setup"
)

// New creates and configures the router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(metrics.Middleware)

	// Cross-origin requests from any origin are permitted.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/threads", h.ListThreads)
		r.Post("/threads", h.CreateThread)
		r.Get("/threads/{id}", h.GetThread)
		r.Delete("/threads/{id}", h.DeleteThread)

		r.Get("/threads/{id}/posts", h.ListPosts)
		r.Post("/threads/{id}/posts", h.CreatePost)
		r.Post("/system/threads/{id}/posts", h.CreateSystemPost)
		r.Get("/threads/{id}/documents", h.ListDocuments)

		r.Get("/posts/{id}", h.GetPost)
		r.Put("/posts/{id}", h.UpdatePost)
		r.Delete("/posts/{id}", h.DeletePost)

		r.Post("/documents", h.CreateDocument)
		r.Get("/documents/{id}", h.GetDocument)
		r.Put("/documents/{id}", h.UpdateDocument)
		r.Delete("/documents/{id}", h.DeleteDocument)

		r.Post("/upload", h.Upload)
		r.Get("/uploads/{name}", h.ServeUpload)
	})

	return r
}
