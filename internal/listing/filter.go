// internal/listing/filter.go
//
// Filter engine for the three list views (insights table, best-practices
// list, mistakes list).
//
// Semantics
// ---------
// AND across criteria fields, OR within a field's value set.  An empty or
// absent field imposes no constraint, never "matches nothing".  Free-text
// search is a case-insensitive substring test over the title, every tag,
// and every value in all four tech-stack categories.  Filtering never
// mutates its input and preserves the relative order of matches.
//
// Notes
// -----
// • Value matching is case-sensitive exact, mirroring how the tags are
//   ingested; only Search folds case.
// • Oxford commas, two spaces after periods.

package listing

import (
	"strings"

	"github.com/vibecodingtips/vibetips/internal/content"
)

// Criteria is the full filter specification.  The zero value means "no
// constraint"; every field defaults to an empty collection or string.
type Criteria struct {
	Languages      []string
	Tools          []string
	Tags           []string
	ImpactLevels   []content.ImpactLevel
	ProjectTypes   []string
	TypeOfProjects []string
	ProblemTypes   []string

	// ProblemType is the single-valued variant used by the insights view.
	// Empty means unset.  When both it and ProblemTypes are set, both must
	// match (they are distinct criteria fields).
	ProblemType string

	Search string
}

// IsZero reports whether no field constrains anything.
func (c Criteria) IsZero() bool {
	return len(c.Languages) == 0 && len(c.Tools) == 0 && len(c.Tags) == 0 &&
		len(c.ImpactLevels) == 0 && len(c.ProjectTypes) == 0 &&
		len(c.TypeOfProjects) == 0 && len(c.ProblemTypes) == 0 &&
		c.ProblemType == "" && strings.TrimSpace(c.Search) == ""
}

// FilterInsights returns the insights satisfying every specified field.
func FilterInsights(rows []content.Insight, c Criteria) []content.Insight {
	out := make([]content.Insight, 0, len(rows))
	for i := range rows {
		if matchInsight(&rows[i], c) {
			out = append(out, rows[i])
		}
	}
	return out
}

// FilterPractices is the flattened-record counterpart of FilterInsights.
func FilterPractices(rows []content.Practice, c Criteria) []content.Practice {
	out := make([]content.Practice, 0, len(rows))
	for i := range rows {
		if matchPractice(&rows[i], c) {
			out = append(out, rows[i])
		}
	}
	return out
}

func matchInsight(ins *content.Insight, c Criteria) bool {
	if !anyOrEmpty(c.ProjectTypes, ins.ProjectType) {
		return false
	}
	if !anyOrEmpty(c.TypeOfProjects, ins.TypeOfProject) {
		return false
	}
	if !anyOrEmpty(c.ProblemTypes, ins.TypeOfProblem) {
		return false
	}
	if c.ProblemType != "" && ins.TypeOfProblem != c.ProblemType {
		return false
	}
	if !intersects(c.Tags, ins.Tags) {
		return false
	}
	if !intersects(c.Tools, ins.TechStack.Tools) {
		return false
	}
	if !intersects(c.Languages, ins.TechStack.Languages) {
		return false
	}
	return matchSearch(c.Search, ins.Title, ins.Tags, ins.TechStack.TechStack)
}

func matchPractice(p *content.Practice, c Criteria) bool {
	if len(c.ImpactLevels) > 0 && !containsLevel(c.ImpactLevels, p.ImpactLevel) {
		return false
	}
	if !intersects(c.Languages, p.TechStack.Languages) {
		return false
	}
	if !intersects(c.Tools, p.TechStack.Tools) {
		return false
	}
	if !intersects(c.Tags, p.Tags) {
		return false
	}
	return matchSearch(c.Search, p.Title, p.Tags, p.TechStack)
}

// anyOrEmpty reports whether want is empty or contains got.
func anyOrEmpty(want []string, got string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		if w == got {
			return true
		}
	}
	return false
}

// intersects reports whether want is empty or shares at least one value
// with have.
func intersects(want, have []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}

func containsLevel(want []content.ImpactLevel, got content.ImpactLevel) bool {
	for _, w := range want {
		if w == got {
			return true
		}
	}
	return false
}

// matchSearch applies the free-text constraint.  A blank query always
// matches.
func matchSearch(query, title string, tags []string, stack content.TechStack) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(title), q) {
		return true
	}
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	for _, t := range stack.All() {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
