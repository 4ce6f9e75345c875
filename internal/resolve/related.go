// internal/resolve/related.go
//
// Related-records lookup: other insights sharing at least one tag with a
// resolved record, ranked by how many tags they share.  Pure function of
// the snapshot; ties keep original order so the result is deterministic.

package resolve

import (
	"sort"

	"github.com/vibecodingtips/vibetips/internal/content"
)

// Related returns up to limit insights that share ≥1 tag with rec,
// excluding rec itself, ordered by shared-tag count descending.
func Related(rows []content.Insight, rec *content.Insight, limit int) []content.Insight {
	if limit < 1 || rec == nil {
		return nil
	}

	want := make(map[string]struct{}, len(rec.Tags))
	for _, t := range rec.Tags {
		want[t] = struct{}{}
	}

	type candidate struct {
		idx    int
		shared int
	}
	var cands []candidate
	for i := range rows {
		if rows[i].ID == rec.ID {
			continue
		}
		shared := 0
		for _, t := range rows[i].Tags {
			if _, ok := want[t]; ok {
				shared++
			}
		}
		if shared > 0 {
			cands = append(cands, candidate{idx: i, shared: shared})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].shared > cands[j].shared })

	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]content.Insight, len(cands))
	for i, c := range cands {
		out[i] = rows[c.idx]
	}
	return out
}
