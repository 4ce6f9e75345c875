// internal/listing/paginate_test.go
//
// Unit-tests for the paginator, pinning the policy this service applies
// uniformly: minimum one page, out-of-range pages clamped, never errors.

package listing

import "testing"

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_Windows(t *testing.T) {
	rows := intRange(25)

	p1 := Paginate(rows, 1, 10)
	if len(p1.Slice) != 10 || p1.TotalPages != 3 || p1.TotalCount != 25 || p1.Page != 1 {
		t.Fatalf("page 1: %+v", p1)
	}
	if p1.Slice[0] != 0 || p1.Slice[9] != 9 {
		t.Fatalf("page 1 window wrong: %v", p1.Slice)
	}

	p3 := Paginate(rows, 3, 10)
	if len(p3.Slice) != 5 || p3.Slice[0] != 20 {
		t.Fatalf("page 3: %+v", p3)
	}
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	rows := intRange(25)

	// Beyond the end clamps to the last page rather than returning empty.
	p := Paginate(rows, 99, 10)
	if p.Page != 3 || len(p.Slice) != 5 {
		t.Fatalf("over-range: %+v", p)
	}

	p = Paginate(rows, 0, 10)
	if p.Page != 1 || len(p.Slice) != 10 {
		t.Fatalf("under-range: %+v", p)
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	p := Paginate([]int(nil), 1, 10)
	if p.TotalPages != 1 || p.Page != 1 || len(p.Slice) != 0 || p.TotalCount != 0 {
		t.Fatalf("empty input: %+v", p)
	}
}

func TestPaginate_PerPageBounds(t *testing.T) {
	rows := intRange(100)

	if p := Paginate(rows, 1, 0); len(p.Slice) != DefaultPerPage {
		t.Fatalf("perPage 0 did not fall back: %d", len(p.Slice))
	}
	if p := Paginate(rows, 1, 10_000); len(p.Slice) != MaxPerPage {
		t.Fatalf("perPage uncapped: %d", len(p.Slice))
	}
}
