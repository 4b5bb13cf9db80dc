// Package api exposes the catalog and the scoring step over HTTP. The
// server holds no session state; every score request carries its answers.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abstractlab/yayi/internal/flow"
	"github.com/abstractlab/yayi/internal/quiz"
)

// Options configures the router.
type Options struct {
	Catalog   *quiz.Catalog
	Evaluator *flow.Evaluator

	// AllowedOrigins enables CORS for browser front ends. Empty disables it.
	AllowedOrigins []string

	// RequestTimeout bounds each request, including the commentary call.
	RequestTimeout time.Duration
}

// NewRouter builds the HTTP handler.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", HealthHandler())

	r.Route("/api/v1", func(ar chi.Router) {
		ar.Get("/catalog/{mode}", CatalogHandler(opts.Catalog))
		ar.Post("/score", ScoreHandler(opts.Evaluator))
	})

	return r
}
