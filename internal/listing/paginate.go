// internal/listing/paginate.go
//
// Paginator over an already filtered and sorted slice.
//
// Policy (applied uniformly; the source call sites disagreed, so we pin
// one behavior here and in the tests):
//
//   - TotalPages = ceil(n / perPage), minimum 1 even for an empty input.
//   - An out-of-range page is clamped to [1, TotalPages]; never an error,
//     never a silent empty slice for page > TotalPages.
//   - perPage < 1 falls back to DefaultPerPage.

package listing

// Page sizes.  DefaultPerPage matches the insights table; the flattened
// practice/mistake lists pass their own size.
const (
	DefaultPerPage  = 20
	MaxPerPage      = 50
	PracticePerPage = 10
)

// Page is one pagination window plus its metadata.
type Page[T any] struct {
	Slice      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	TotalCount int `json:"totalCount"`
}

// Paginate slices rows into the requested fixed-size window.
func Paginate[T any](rows []T, page, perPage int) Page[T] {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	total := (len(rows) + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return Page[T]{
		Slice:      rows[start:end],
		Page:       page,
		TotalPages: total,
		TotalCount: len(rows),
	}
}
