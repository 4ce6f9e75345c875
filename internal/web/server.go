// internal/web/server.go
//
// HTTP surface: chi router wiring the list pipeline, the slug resolver,
// and the static tip collection behind JSON endpoints.
//
// Routes
// ------
//
//	GET /insights                 – filtered/sorted/paged insight table
//	GET /insights/{slug}          – tiered slug resolution + related links
//	GET /best-practices           – flattened practice list
//	GET /mistakes-to-avoid        – flattened what-not-to-do list
//	GET /tips                     – static tip index
//	GET /tips/{slug}              – one tip by file path
//	GET /healthz                  – liveness
//	GET /metrics                  – Prometheus (mounted in cmd/web)
//
// The handlers are thin: parse filter state from the query string, pull
// the current snapshot, run normalize → filter → sort → paginate, and
// encode the window plus its metadata.  All pipeline semantics live in
// internal/listing and internal/resolve.

package web

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/vibecodingtips/vibetips/internal/cache"
	"github.com/vibecodingtips/vibetips/internal/content"
	"github.com/vibecodingtips/vibetips/internal/middleware"
	"github.com/vibecodingtips/vibetips/internal/snapshot"
	"github.com/vibecodingtips/vibetips/internal/tips"
)

// Options configures a Server.
type Options struct {
	RelatedLimit    int
	ResolverCacheSz int
}

// Server owns the handler dependencies.
type Server struct {
	snap *snapshot.Cache
	tips *tips.Collection
	opts Options

	mu       sync.Mutex
	resolved *cache.LRU[string, resolvedEntry]
}

// resolvedEntry memoizes one slug resolution against a snapshot
// generation; entries from an older snapshot are ignored.
type resolvedEntry struct {
	rec  *content.Insight
	gen  int64
	miss bool
}

// New builds a Server.
func New(snap *snapshot.Cache, col *tips.Collection, opts Options) *Server {
	if opts.RelatedLimit < 1 {
		opts.RelatedLimit = 5
	}
	if opts.ResolverCacheSz < 1 {
		opts.ResolverCacheSz = 512
	}
	return &Server{
		snap:     snap,
		tips:     col,
		opts:     opts,
		resolved: cache.New[string, resolvedEntry](opts.ResolverCacheSz),
	}
}

// Router assembles the middleware chain and routes.
func (s *Server) Router(forceHTTPS bool) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Security)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/insights", s.handleInsights)
	r.Get("/insights/{slug}", s.handleInsightDetail)
	r.Get("/best-practices", s.handlePractices(content.BestPractices))
	r.Get("/mistakes-to-avoid", s.handlePractices(content.WhatNotToDo))
	r.Get("/tips", s.handleTips)
	r.Get("/tips/{slug}", s.handleTipDetail)

	if forceHTTPS {
		return middleware.ForceHTTPS(r)
	}
	return r
}
