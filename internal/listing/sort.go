// internal/listing/sort.go
//
// Sort engine.  Every sorter returns a fresh slice (non-mutating) and is
// stable: records the comparator considers equal keep their input order.
// Changing the sort mode always re-sorts the full filtered set; callers
// must never sort a page slice.

package listing

import (
	"sort"
	"strings"

	"github.com/vibecodingtips/vibetips/internal/content"
)

// SortMode selects the ordering for practice/mistake lists.
type SortMode string

const (
	// SortDefault orders by impact rank descending, ties by ups descending.
	SortDefault SortMode = "default"
	// SortNewest orders by createdAt descending.
	SortNewest SortMode = "newest"
	// SortOldest orders by createdAt ascending.
	SortOldest SortMode = "oldest"
)

// ParseSortMode maps a query value to a mode, defaulting on junk input.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortNewest:
		return SortNewest
	case SortOldest:
		return SortOldest
	}
	return SortDefault
}

// SortPractices orders flattened records by the given mode.
func SortPractices(rows []content.Practice, mode SortMode) []content.Practice {
	out := append([]content.Practice(nil), rows...)
	switch mode {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	default:
		sort.SliceStable(out, func(i, j int) bool {
			ri, rj := out[i].ImpactLevel.Rank(), out[j].ImpactLevel.Rank()
			if ri != rj {
				return ri > rj
			}
			return out[i].Ups > out[j].Ups
		})
	}
	return out
}

// SortDirection is an ad hoc column-sort direction.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// Insight column keys accepted by SortInsightsByColumn.  Unknown keys
// leave the input order untouched, matching the "no comparator" case.
const (
	ColTitle          = "title"
	ColProjectType    = "projectType"
	ColTypeOfProject  = "typeOfProject"
	ColTypeOfProblem  = "typeOfProblem"
	ColRelevanceScore = "relevanceScore"
	ColUps            = "ups"
	ColCreatedAt      = "createdAt"
	ColUpdatedAt      = "updatedAt"
)

// SortInsightsByColumn sorts by a named column: string columns compare
// lexicographically, numeric columns numerically.  Equal values preserve
// input order.
func SortInsightsByColumn(rows []content.Insight, key string, dir SortDirection) []content.Insight {
	out := append([]content.Insight(nil), rows...)

	var less func(a, b *content.Insight) bool
	switch key {
	case ColTitle:
		less = stringLess(func(r *content.Insight) string { return r.Title })
	case ColProjectType:
		less = stringLess(func(r *content.Insight) string { return r.ProjectType })
	case ColTypeOfProject:
		less = stringLess(func(r *content.Insight) string { return r.TypeOfProject })
	case ColTypeOfProblem:
		less = stringLess(func(r *content.Insight) string { return r.TypeOfProblem })
	case ColRelevanceScore:
		less = func(a, b *content.Insight) bool { return a.RelevanceScore < b.RelevanceScore }
	case ColUps:
		less = func(a, b *content.Insight) bool { return a.Ups < b.Ups }
	case ColCreatedAt:
		less = func(a, b *content.Insight) bool { return a.CreatedAt < b.CreatedAt }
	case ColUpdatedAt:
		less = func(a, b *content.Insight) bool { return a.UpdatedAt < b.UpdatedAt }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return less(&out[j], &out[i])
		}
		return less(&out[i], &out[j])
	})
	return out
}

func stringLess(key func(*content.Insight) string) func(a, b *content.Insight) bool {
	return func(a, b *content.Insight) bool {
		return strings.Compare(key(a), key(b)) < 0
	}
}
