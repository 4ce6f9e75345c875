// internal/content/store/store_test.go
//
// Unit-tests for store helpers using sqlmock.
//
// Workflow
// --------
// Each test builds a sqlmock DB wrapped in sqlx, seeds expected queries,
// and asserts scans (including the jsonb columns) and the tier
// fallthrough of ByTitle.
//
// Run: go test ./internal/content/store -v

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/vibecodingtips/vibetips/internal/content"
)

var insightColumns = []string{
	"id", "post_id", "post_author", "title", "summary", "copyable_prompt",
	"project_type", "type_of_project", "type_of_problem", "tags",
	"tech_stack", "best_practices", "what_not_to_do", "relevance_score",
	"ups", "created_at", "updated_at",
}

func sampleRow() []driver.Value {
	return []driver.Value{
		"i1", "p1", "alice", "Foo Bar", "a summary", "",
		"Small", "Web App", "Refactoring",
		[]byte(`["TDD","Git"]`),
		[]byte(`{"languages":["Go"],"frameworks":[],"tools":["Cursor"],"platforms":[]}`),
		[]byte(`[{"title":"bp","impact_level":"critical","tags":["TDD"]}]`),
		[]byte(`[]`),
		0.92, int64(321), int64(1700000000000), int64(1700000500000),
	}
}

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestListInsights(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`ORDER\s+BY pi\.is_relevant_score DESC, pi\.created_at DESC`).
		WillReturnRows(sqlmock.NewRows(insightColumns).AddRow(sampleRow()...))

	got, err := New(db).ListInsights(context.Background())
	if err != nil {
		t.Fatalf("ListInsights: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("rows = %d, want 1", len(got))
	}

	ins := got[0]
	if ins.ID != "i1" || ins.Title != "Foo Bar" || ins.PostAuthor != "alice" {
		t.Fatalf("scalar scan: %+v", ins)
	}
	if len(ins.Tags) != 2 || ins.Tags[0] != "TDD" {
		t.Fatalf("tags scan: %v", ins.Tags)
	}
	if len(ins.TechStack.Tools) != 1 || ins.TechStack.Tools[0] != "Cursor" {
		t.Fatalf("tech stack scan: %+v", ins.TechStack)
	}
	if len(ins.BestPractices) != 1 || ins.BestPractices[0].ImpactLevel != content.ImpactCritical {
		t.Fatalf("practices scan: %+v", ins.BestPractices)
	}
	if ins.Ups != 321 || ins.RelevanceScore != 0.92 {
		t.Fatalf("numeric scan: %+v", ins)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestByTitle_TierFallthrough(t *testing.T) {
	db, mock := newMock(t)

	// Tier 1 (exact) and tier 2 (LOWER) miss; tier 3 (SIMILARITY) hits.
	mock.ExpectQuery(`WHERE\s+pi\.title = \$1`).
		WithArgs("Foo Bar").
		WillReturnRows(sqlmock.NewRows(insightColumns))
	mock.ExpectQuery(`LOWER\(pi\.title\) = LOWER\(\$1\)`).
		WithArgs("Foo Bar").
		WillReturnRows(sqlmock.NewRows(insightColumns))
	mock.ExpectQuery(`SIMILARITY\(LOWER\(pi\.title\), LOWER\(\$1\)\) > 0\.4`).
		WithArgs("Foo Bar").
		WillReturnRows(sqlmock.NewRows(insightColumns).AddRow(sampleRow()...))

	rec, err := New(db).ByTitle(context.Background(), "Foo Bar")
	if err != nil {
		t.Fatalf("ByTitle: %v", err)
	}
	if rec.ID != "i1" {
		t.Fatalf("wrong record: %+v", rec)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestByTitle_ExactShortCircuits(t *testing.T) {
	db, mock := newMock(t)

	// Only the exact-tier query runs when it hits.
	mock.ExpectQuery(`WHERE\s+pi\.title = \$1`).
		WithArgs("Foo Bar").
		WillReturnRows(sqlmock.NewRows(insightColumns).AddRow(sampleRow()...))

	rec, err := New(db).ByTitle(context.Background(), "Foo Bar")
	if err != nil {
		t.Fatalf("ByTitle: %v", err)
	}
	if rec.Title != "Foo Bar" {
		t.Fatalf("wrong record: %+v", rec)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("later tiers ran on an exact hit: %v", err)
	}
}

func TestByTitle_NotFound(t *testing.T) {
	db, mock := newMock(t)

	for i := 0; i < 3; i++ {
		mock.ExpectQuery(`FROM\s+post_insights pi`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(insightColumns))
	}

	_, err := New(db).ByTitle(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCountInsights(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM post_insights`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := New(db).CountInsights(context.Background())
	if err != nil || n != 7 {
		t.Fatalf("count = %d, err = %v", n, err)
	}
}
