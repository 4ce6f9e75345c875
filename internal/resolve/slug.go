// internal/resolve/slug.go
//
// Slug codec for detail-page URLs.
//
// Generation is deliberately lossy and simple: the title's spaces become
// hyphens and the result is percent-encoded.  Resolution reverses it by
// URL-decoding and turning hyphens back into spaces, then relies on the
// tiered matcher because titles are not guaranteed punctuation-stable
// between generation and lookup (a hyphen inside a title, for instance,
// round-trips to a space).

package resolve

import (
	"net/url"
	"strings"
)

// Slugify derives the canonical URL slug for a title.
func Slugify(title string) string {
	return url.PathEscape(strings.ReplaceAll(title, " ", "-"))
}

// DecodeSlug recovers the candidate title from a URL slug.  A slug that
// fails percent-decoding is used verbatim; the matcher tiers absorb the
// difference.
func DecodeSlug(slug string) string {
	decoded, err := url.PathUnescape(slug)
	if err != nil {
		decoded = slug
	}
	return strings.ReplaceAll(decoded, "-", " ")
}
