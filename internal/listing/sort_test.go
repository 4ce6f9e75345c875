// internal/listing/sort_test.go
//
// Unit-tests for the sort engine: default ordering with its tie-breaks,
// newest/oldest, column sort in both directions, and stability.

package listing

import (
	"reflect"
	"testing"

	"github.com/vibecodingtips/vibetips/internal/content"
)

func practiceTitles(rows []content.Practice) []string {
	out := make([]string, len(rows))
	for i := range rows {
		out[i] = rows[i].Title
	}
	return out
}

func TestSortPractices_Default(t *testing.T) {
	rows := []content.Practice{
		{Title: "nice-high", ImpactLevel: content.ImpactNiceToHave, Ups: 900},
		{Title: "crit-low", ImpactLevel: content.ImpactCritical, Ups: 10},
		{Title: "imp", ImpactLevel: content.ImpactImportant, Ups: 50},
		{Title: "crit-high", ImpactLevel: content.ImpactCritical, Ups: 700},
		{Title: "unranked", ImpactLevel: "", Ups: 9999},
	}

	got := practiceTitles(SortPractices(rows, SortDefault))
	want := []string{"crit-high", "crit-low", "imp", "nice-high", "unranked"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("default sort: got %v, want %v", got, want)
	}
}

func TestSortPractices_DefaultStableTies(t *testing.T) {
	// Identical impact and ups → input order must survive.
	rows := []content.Practice{
		{Title: "first", ImpactLevel: content.ImpactImportant, Ups: 42},
		{Title: "second", ImpactLevel: content.ImpactImportant, Ups: 42},
		{Title: "third", ImpactLevel: content.ImpactImportant, Ups: 42},
	}

	got := practiceTitles(SortPractices(rows, SortDefault))
	if !reflect.DeepEqual(got, []string{"first", "second", "third"}) {
		t.Fatalf("tie order broken: got %v", got)
	}
}

func TestSortPractices_NewestOldest(t *testing.T) {
	rows := []content.Practice{
		{Title: "mid", CreatedAt: 2000},
		{Title: "old", CreatedAt: 1000},
		{Title: "new", CreatedAt: 3000},
	}

	if got := practiceTitles(SortPractices(rows, SortNewest)); !reflect.DeepEqual(got, []string{"new", "mid", "old"}) {
		t.Fatalf("newest: got %v", got)
	}
	if got := practiceTitles(SortPractices(rows, SortOldest)); !reflect.DeepEqual(got, []string{"old", "mid", "new"}) {
		t.Fatalf("oldest: got %v", got)
	}

	// Input untouched.
	if rows[0].Title != "mid" {
		t.Fatal("sort mutated its input")
	}
}

func TestSortInsightsByColumn(t *testing.T) {
	rows := []content.Insight{
		{ID: "1", Title: "beta", RelevanceScore: 0.9},
		{ID: "2", Title: "alpha", RelevanceScore: 0.3},
		{ID: "3", Title: "gamma", RelevanceScore: 0.6},
	}

	asc := SortInsightsByColumn(rows, ColTitle, Asc)
	if got := ids(asc); !reflect.DeepEqual(got, []string{"2", "1", "3"}) {
		t.Fatalf("title asc: got %v", got)
	}

	desc := SortInsightsByColumn(rows, ColRelevanceScore, Desc)
	if got := ids(desc); !reflect.DeepEqual(got, []string{"1", "3", "2"}) {
		t.Fatalf("relevance desc: got %v", got)
	}

	// Unknown key keeps input order.
	same := SortInsightsByColumn(rows, "bogus", Asc)
	if got := ids(same); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("unknown key reordered: got %v", got)
	}
}

func TestParseSortMode(t *testing.T) {
	if ParseSortMode("newest") != SortNewest || ParseSortMode("oldest") != SortOldest {
		t.Fatal("known modes misparsed")
	}
	if ParseSortMode("") != SortDefault || ParseSortMode("junk") != SortDefault {
		t.Fatal("junk must fall back to default")
	}
}
