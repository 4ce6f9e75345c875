// internal/listing/state_test.go
//
// Unit-tests for the filter state reducer and its URL query codec.
//
// The one rule that keeps the UI honest: any criteria or sort change
// resets the page to 1; only SetPage moves it without side effects.

package listing

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/vibecodingtips/vibetips/internal/content"
)

func TestState_CriteriaChangesResetPage(t *testing.T) {
	resets := []struct {
		name  string
		apply func(*State)
	}{
		{"languages", func(s *State) { s.SetLanguages([]string{"Go"}) }},
		{"tools", func(s *State) { s.SetTools([]string{"Cursor"}) }},
		{"tags", func(s *State) { s.SetTags([]string{"TDD"}) }},
		{"impact", func(s *State) { s.SetImpactLevels([]content.ImpactLevel{content.ImpactCritical}) }},
		{"projectTypes", func(s *State) { s.SetProjectTypes([]string{"Small"}) }},
		{"typeOfProjects", func(s *State) { s.SetTypeOfProjects([]string{"CLI"}) }},
		{"problemType", func(s *State) { s.SetProblemType("Cost") }},
		{"search", func(s *State) { s.SetSearch("refactor") }},
		{"sort", func(s *State) { s.SetSort(SortNewest) }},
	}

	for _, tc := range resets {
		s := NewState(10)
		s.SetPage(4)
		tc.apply(&s)
		if s.Page != 1 {
			t.Errorf("%s: page = %d, want 1", tc.name, s.Page)
		}
	}
}

func TestState_SetPageLeavesCriteriaAlone(t *testing.T) {
	s := NewState(10)
	s.SetLanguages([]string{"Go"})
	s.SetPage(3)

	if s.Page != 3 {
		t.Fatalf("page = %d", s.Page)
	}
	if !reflect.DeepEqual(s.Criteria.Languages, []string{"Go"}) {
		t.Fatalf("criteria changed by SetPage: %+v", s.Criteria)
	}
}

func TestState_NextPrevClampAtEdges(t *testing.T) {
	s := NewState(10)

	s.PrevPage() // already at 1
	if s.Page != 1 {
		t.Fatalf("prev at first page moved to %d", s.Page)
	}

	s.SetPage(3)
	s.NextPage(3) // already at last
	if s.Page != 3 {
		t.Fatalf("next at last page moved to %d", s.Page)
	}
	s.NextPage(4)
	if s.Page != 4 {
		t.Fatalf("next did not advance: %d", s.Page)
	}
}

func TestParseQuery_RoundTrip(t *testing.T) {
	q := url.Values{}
	q.Set("languages", "Go,Python")
	q.Set("tags", "TDD")
	q.Set("impactLevels", "critical,nice_to_have")
	q.Set("search", "sql")
	q.Set("sortBy", "oldest")
	q.Set("page", "2")
	q.Set("perPage", "25")

	s := ParseQuery(q, DefaultPerPage)

	if !reflect.DeepEqual(s.Criteria.Languages, []string{"Go", "Python"}) {
		t.Fatalf("languages: %v", s.Criteria.Languages)
	}
	if len(s.Criteria.ImpactLevels) != 2 {
		t.Fatalf("impact levels: %v", s.Criteria.ImpactLevels)
	}
	if s.Sort != SortOldest || s.Page != 2 || s.PerPage != 25 {
		t.Fatalf("state: %+v", s)
	}

	// Encode → Parse is the identity on the populated fields.
	again := ParseQuery(s.EncodeQuery(), DefaultPerPage)
	if !reflect.DeepEqual(again, s) {
		t.Fatalf("round trip drifted:\n got %+v\nwant %+v", again, s)
	}
}

func TestParseQuery_MalformedInputDegrades(t *testing.T) {
	q := url.Values{}
	q.Set("page", "banana")
	q.Set("perPage", "-3")
	q.Set("impactLevels", "critical,not_a_level")
	q.Set("tags", ",,,")

	s := ParseQuery(q, DefaultPerPage)

	if s.Page != 1 || s.PerPage != DefaultPerPage {
		t.Fatalf("numeric junk not defaulted: %+v", s)
	}
	if len(s.Criteria.ImpactLevels) != 1 || s.Criteria.ImpactLevels[0] != content.ImpactCritical {
		t.Fatalf("unknown level kept: %v", s.Criteria.ImpactLevels)
	}
	if s.Criteria.Tags != nil {
		t.Fatalf("empty segments kept: %v", s.Criteria.Tags)
	}
}
