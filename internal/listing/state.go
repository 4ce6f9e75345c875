// internal/listing/state.go
//
// Explicit filter state shared by the sibling widgets of a list page
// (search box, sidebar filters, chips, table, pager).
//
// Context
// -------
// The state is a plain value plus reducer-style setters: every setter that
// changes a criteria field resets the page to 1, while SetPage changes
// only the page.  Nothing here is global; each page holds its own State
// and re-runs the pipeline on every change.
//
// The URL query codec mirrors the presentation contract: comma-joined
// value lists per filter key, page/perPage as integers.  Malformed input
// degrades to defaults and never errors.

package listing

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/vibecodingtips/vibetips/internal/content"
)

// State is the filter, sort, and pagination state of one list view.
type State struct {
	Criteria Criteria
	Sort     SortMode
	Page     int
	PerPage  int
}

// NewState returns the defaults: no constraints, default sort, page 1.
func NewState(perPage int) State {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return State{Sort: SortDefault, Page: 1, PerPage: perPage}
}

//
// Reducer-style setters.  Criteria and sort changes reset the page.
//

func (s *State) SetLanguages(v []string) { s.Criteria.Languages = v; s.Page = 1 }
func (s *State) SetTools(v []string)     { s.Criteria.Tools = v; s.Page = 1 }
func (s *State) SetTags(v []string)      { s.Criteria.Tags = v; s.Page = 1 }

func (s *State) SetImpactLevels(v []content.ImpactLevel) { s.Criteria.ImpactLevels = v; s.Page = 1 }

func (s *State) SetProjectTypes(v []string)   { s.Criteria.ProjectTypes = v; s.Page = 1 }
func (s *State) SetTypeOfProjects(v []string) { s.Criteria.TypeOfProjects = v; s.Page = 1 }
func (s *State) SetProblemType(v string)      { s.Criteria.ProblemType = v; s.Page = 1 }
func (s *State) SetSearch(v string)           { s.Criteria.Search = v; s.Page = 1 }
func (s *State) SetSort(m SortMode)           { s.Sort = m; s.Page = 1 }

// Reset restores the defaults, keeping the configured page size.
func (s *State) Reset() { *s = NewState(s.PerPage) }

// SetPage moves to page n without touching filter or sort state.  Bounds
// are enforced at paginate time; here we only reject nonsense.
func (s *State) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.Page = n
}

// NextPage and PrevPage are clamped no-ops at the edges.
func (s *State) NextPage(totalPages int) {
	if s.Page < totalPages {
		s.Page++
	}
}

func (s *State) PrevPage() {
	if s.Page > 1 {
		s.Page--
	}
}

//
// URL query codec.
//

// ParseQuery builds a State from URL query values.  Unknown keys are
// ignored, malformed numbers fall back to defaults.
func ParseQuery(q url.Values, perPage int) State {
	s := NewState(perPage)

	s.Criteria.ProjectTypes = splitList(q.Get("projectTypes"))
	s.Criteria.TypeOfProjects = splitList(q.Get("typeOfProjects"))
	s.Criteria.ProblemTypes = splitList(q.Get("problemTypes"))
	s.Criteria.ProblemType = q.Get("problemType")
	s.Criteria.Tags = splitList(q.Get("tags"))
	s.Criteria.Tools = splitList(q.Get("tools"))
	s.Criteria.Languages = splitList(q.Get("languages"))
	s.Criteria.Search = q.Get("search")

	for _, raw := range splitList(q.Get("impactLevels")) {
		lvl := content.ImpactLevel(raw)
		if lvl.Rank() > 0 {
			s.Criteria.ImpactLevels = append(s.Criteria.ImpactLevels, lvl)
		}
	}

	s.Sort = ParseSortMode(q.Get("sortBy"))

	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		s.SetPage(n)
	}
	if n, err := strconv.Atoi(q.Get("perPage")); err == nil && n >= 1 && n <= MaxPerPage {
		s.PerPage = n
	}
	return s
}

// EncodeQuery is the inverse of ParseQuery, omitting every default so the
// canonical URL stays short.
func (s State) EncodeQuery() url.Values {
	q := url.Values{}

	setList := func(key string, vals []string) {
		if len(vals) > 0 {
			q.Set(key, strings.Join(vals, ","))
		}
	}
	setList("projectTypes", s.Criteria.ProjectTypes)
	setList("typeOfProjects", s.Criteria.TypeOfProjects)
	setList("problemTypes", s.Criteria.ProblemTypes)
	setList("tags", s.Criteria.Tags)
	setList("tools", s.Criteria.Tools)
	setList("languages", s.Criteria.Languages)

	if len(s.Criteria.ImpactLevels) > 0 {
		lvls := make([]string, len(s.Criteria.ImpactLevels))
		for i, l := range s.Criteria.ImpactLevels {
			lvls[i] = string(l)
		}
		q.Set("impactLevels", strings.Join(lvls, ","))
	}
	if s.Criteria.ProblemType != "" {
		q.Set("problemType", s.Criteria.ProblemType)
	}
	if s.Criteria.Search != "" {
		q.Set("search", s.Criteria.Search)
	}
	if s.Sort != SortDefault {
		q.Set("sortBy", string(s.Sort))
	}
	if s.Page != 1 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	if s.PerPage != DefaultPerPage {
		q.Set("perPage", strconv.Itoa(s.PerPage))
	}
	return q
}

// splitList splits a comma-joined value, dropping empty segments.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
