// internal/resolve/resolver.go
//
// Tiered slug-to-record resolution.
//
// Context
// -------
// A detail-page slug is the record's title with spaces replaced by
// hyphens, so most lookups land in tier 1.  Titles are not ASCII- or
// punctuation-stable end to end, though, which is why two fallback tiers
// exist.  The tier order is a hard contract, not an optimization:
//
//   1. exact       – title equals the decoded slug byte-for-byte,
//   2. fold        – title equals it ignoring case,
//   3. fuzzy       – best similarity score strictly above Threshold.
//
// The similarity function is injected so deployments can swap the
// algorithm (pg_trgm in SQL, Jaro-Winkler, ...) as long as it scores on a
// 0–1 scale; the default is the in-process trigram scorer.

package resolve

import (
	"errors"
	"strings"

	"github.com/vibecodingtips/vibetips/internal/content"
	"github.com/vibecodingtips/vibetips/internal/trigram"
)

// ErrNotFound is returned when every tier misses.  It is the resolver's
// only failure mode and must stay distinguishable from a malformed slug,
// which simply resolves like any other decoded string.
var ErrNotFound = errors.New("resolve: no record matches slug")

// Threshold is the minimum fuzzy score, exclusive.  A candidate scoring
// exactly Threshold is rejected.
const Threshold = 0.4

// Scorer rates the similarity of two strings on a 0–1 scale.
type Scorer func(a, b string) float64

// Tier identifies which match tier produced a result, mostly for metrics
// and logging.
type Tier string

const (
	TierExact Tier = "exact"
	TierFold  Tier = "fold"
	TierFuzzy Tier = "fuzzy"
)

// Resolver maps slugs onto an insight snapshot.
type Resolver struct {
	rows  []content.Insight
	score Scorer
}

// New builds a Resolver over rows.  A nil scorer selects the trigram
// default.
func New(rows []content.Insight, score Scorer) *Resolver {
	if score == nil {
		score = trigram.Similarity
	}
	return &Resolver{rows: rows, score: score}
}

// Resolve returns the single record for slug, and the tier that matched.
func (r *Resolver) Resolve(slug string) (*content.Insight, Tier, error) {
	title := DecodeSlug(slug)

	// Tier 1: exact.
	for i := range r.rows {
		if r.rows[i].Title == title {
			return &r.rows[i], TierExact, nil
		}
	}

	// Tier 2: case-insensitive.
	for i := range r.rows {
		if strings.EqualFold(r.rows[i].Title, title) {
			return &r.rows[i], TierFold, nil
		}
	}

	// Tier 3: best fuzzy candidate strictly above the threshold.  The
	// scorer sees lowercased inputs, mirroring SIMILARITY(LOWER(…), …).
	lowered := strings.ToLower(title)
	best := -1
	bestScore := Threshold
	for i := range r.rows {
		if s := r.score(strings.ToLower(r.rows[i].Title), lowered); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best >= 0 {
		return &r.rows[best], TierFuzzy, nil
	}

	return nil, "", ErrNotFound
}
