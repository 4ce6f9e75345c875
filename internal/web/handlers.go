// internal/web/handlers.go
//
// JSON handlers for the list views, detail pages, and tips.  List
// responses carry the window plus pagination metadata and, for the
// insights table, the sidebar filter options derived from the full set.

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vibecodingtips/vibetips/internal/content"
	"github.com/vibecodingtips/vibetips/internal/listing"
	"github.com/vibecodingtips/vibetips/internal/metrics"
	"github.com/vibecodingtips/vibetips/internal/resolve"
)

// handleInsights serves the insights table: filter from the query string,
// optional ad hoc column sort, then paginate.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snap.Get(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}

	q := r.URL.Query()
	st := listing.ParseQuery(q, listing.DefaultPerPage)

	rows := listing.FilterInsights(snap.Insights, st.Criteria)
	if key := q.Get("sortKey"); key != "" {
		dir := listing.SortDirection(q.Get("sortDir"))
		if dir != listing.Asc {
			dir = listing.Desc
		}
		rows = listing.SortInsightsByColumn(rows, key, dir)
	}
	page := listing.Paginate(rows, st.Page, st.PerPage)

	writeJSON(w, struct {
		listing.Page[content.Insight]
		Options content.FilterOptions `json:"options"`
	}{page, snap.Options})
}

// handlePractices serves the flattened best-practice or mistake lists.
func (s *Server) handlePractices(src content.PracticeSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := s.snap.Get(r.Context())
		if err != nil {
			serverError(w, err)
			return
		}

		rows := snap.Practices
		if src == content.WhatNotToDo {
			rows = snap.Mistakes
		}

		st := listing.ParseQuery(r.URL.Query(), listing.PracticePerPage)
		filtered := listing.FilterPractices(rows, st.Criteria)
		sorted := listing.SortPractices(filtered, st.Sort)
		page := listing.Paginate(sorted, st.Page, st.PerPage)

		writeJSON(w, page)
	}
}

// handleInsightDetail resolves a slug through the tier chain and attaches
// related records.  Resolutions are memoized per snapshot generation.
func (s *Server) handleInsightDetail(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snap.Get(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}

	slug := chi.URLParam(r, "slug")
	gen := snap.LoadedAt.UnixNano()

	rec, tier, hit := s.lookupCached(slug, gen)
	if !hit {
		var rerr error
		rec, tier, rerr = resolve.New(snap.Insights, nil).Resolve(slug)
		if rerr != nil && !errors.Is(rerr, resolve.ErrNotFound) {
			serverError(w, rerr)
			return
		}
		s.storeCached(slug, gen, rec)
	}

	if rec == nil {
		metrics.SlugResolveTotal.WithLabelValues("miss").Inc()
		http.NotFound(w, r)
		return
	}
	if tier != "" {
		metrics.SlugResolveTotal.WithLabelValues(string(tier)).Inc()
	}

	writeJSON(w, struct {
		*content.Insight
		Slug    string            `json:"slug"`
		Related []content.Insight `json:"related"`
	}{
		Insight: rec,
		Slug:    resolve.Slugify(rec.Title),
		Related: resolve.Related(snap.Insights, rec, s.opts.RelatedLimit),
	})
}

// handleTips serves the static tip index, newest first.
func (s *Server) handleTips(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, struct {
		Items      []tipsItem `json:"items"`
		Categories []string   `json:"categories"`
	}{tipItems(s), s.tips.Categories()})
}

// handleTipDetail is an exact-path lookup; tips have no fuzzy tier.
func (s *Server) handleTipDetail(w http.ResponseWriter, r *http.Request) {
	tip, ok := s.tips.ByPath(chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, tipsItemDetail{Tip: tip, Markdown: tip.Body})
}

//
// cache plumbing
//

func (s *Server) lookupCached(slug string, gen int64) (*content.Insight, resolve.Tier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.resolved.Get(slug)
	if !ok || ent.gen != gen {
		return nil, "", false
	}
	if ent.miss {
		return nil, "", true
	}
	// Cached hits lose their original tier; report them as exact for
	// metric purposes since re-resolution is skipped.
	return ent.rec, resolve.TierExact, true
}

func (s *Server) storeCached(slug string, gen int64, rec *content.Insight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolved.Add(slug, resolvedEntry{rec: rec, gen: gen, miss: rec == nil})
}

//
// helpers
//

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("response encode failed", zap.Error(err))
	}
}

func serverError(w http.ResponseWriter, err error) {
	zap.L().Error("handler failure", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
