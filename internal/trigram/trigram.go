// internal/trigram/trigram.go
//
// Trigram similarity compatible with Postgres pg_trgm.
//
// Context
// -------
// The production slug lookup leans on the pg_trgm SIMILARITY() function as
// its last-resort tier.  This package reproduces that scoring in process
// so the resolver can run against an in-memory snapshot (and so tests can
// pin the 0.4 threshold without a database).
//
// Scoring follows pg_trgm: the input is lowercased, split on non-
// alphanumerics into words, each word padded with two leading and one
// trailing space, and sliced into 3-grams.  The score is
// |shared| / |union| over the two distinct trigram sets, in [0,1].

package trigram

import (
	"strings"
	"unicode"
)

// Similarity scores a against b on the pg_trgm scale.  Identical strings
// score 1; strings sharing no trigrams score 0.
func Similarity(a, b string) float64 {
	ta := Set(a)
	tb := Set(b)
	if len(ta) == 0 || len(tb) == 0 {
		if len(ta) == 0 && len(tb) == 0 {
			return 1
		}
		return 0
	}

	shared := 0
	for g := range ta {
		if _, ok := tb[g]; ok {
			shared++
		}
	}
	union := len(ta) + len(tb) - shared
	return float64(shared) / float64(union)
}

// Set returns the distinct padded trigrams of s.
func Set(s string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, w := range words(s) {
		padded := "  " + w + " "
		for i := 0; i+3 <= len(padded); i++ {
			out[padded[i:i+3]] = struct{}{}
		}
	}
	return out
}

// words lowercases and splits on anything that is not a letter or digit,
// the same word extraction pg_trgm applies before padding.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
