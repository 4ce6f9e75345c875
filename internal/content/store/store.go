// internal/content/store/store.go
//
// Read-only repository over posts ⋈ post_insights.
//
// Context
// -------
// The web process never writes these tables; an external ingestion batch
// owns them.  Each helper executes exactly one parameterised SELECT, scans
// into content types (jsonb columns go through their sql.Scanner
// wrappers), and returns errors verbatim so the caller can wrap or log
// them with the project logger.
//
// Workflow
// --------
//  1. Callers supply a *sqlx.DB already connected to the content database.
//  2. ListInsights feeds the snapshot; ByTitle* are the SQL mirror of the
//     in-memory resolver tiers for cold lookups.
//  3. Timestamps come back as epoch milliseconds so the pipeline never
//     does timezone math.
//
// Notes
// -----
//   - Column list matches the fields in content.Insight; update both
//     together.
//   - The fuzzy tier needs `CREATE EXTENSION pg_trgm`.
//   - Oxford commas, two spaces after periods.

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/vibecodingtips/vibetips/internal/content"
)

// ErrNotFound is returned when a title lookup misses on every tier.
var ErrNotFound = errors.New("store: insight not found")

const selectColumns = `
        SELECT pi.id,
               pi.post_id,
               p.author                                   AS post_author,
               pi.title,
               pi.summary,
               COALESCE(pi.copyable_prompt, '')           AS copyable_prompt,
               pi.project_type,
               pi.type_of_project,
               pi.type_of_problem,
               pi.tags,
               pi.tech_stack,
               pi.best_practices,
               pi.what_not_to_do,
               pi.is_relevant_score                       AS relevance_score,
               p.ups,
               pi.created_at,
               pi.updated_at
        FROM   post_insights pi
        JOIN   posts p ON p.id = pi.post_id`

// Store wraps the content database handle.
type Store struct {
	db *sqlx.DB
}

// New returns a Store over db.
func New(db *sqlx.DB) *Store { return &Store{db: db} }

// ListInsights returns every completed insight joined with its post,
// ordered the way the insights table presents them by default: relevance
// descending, then newest first.
func (s *Store) ListInsights(ctx context.Context) ([]content.Insight, error) {
	const q = selectColumns + `
        WHERE  pi.processing_status = 'completed'
        ORDER  BY pi.is_relevant_score DESC, pi.created_at DESC`
	var rows []content.Insight
	if err := s.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByTitle runs the three resolver tiers in SQL: exact, case-insensitive,
// then pg_trgm similarity strictly above 0.4 taking the best candidate.
// Used for cold lookups that bypass the snapshot.
func (s *Store) ByTitle(ctx context.Context, title string) (*content.Insight, error) {
	tiers := []struct {
		where string
		order string
	}{
		{where: `pi.title = $1`},
		{where: `LOWER(pi.title) = LOWER($1)`},
		{
			where: `SIMILARITY(LOWER(pi.title), LOWER($1)) > 0.4`,
			order: ` ORDER BY SIMILARITY(LOWER(pi.title), LOWER($1)) DESC`,
		},
	}

	for _, tier := range tiers {
		q := selectColumns + `
        WHERE  ` + tier.where + tier.order + `
        LIMIT  1`
		var rec content.Insight
		err := s.db.GetContext(ctx, &rec, q, title)
		switch {
		case err == nil:
			return &rec, nil
		case errors.Is(err, sql.ErrNoRows):
			continue
		default:
			return nil, err
		}
	}
	return nil, ErrNotFound
}

// CountInsights is an early sanity check for bootstrap logging.
func (s *Store) CountInsights(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `
        SELECT COUNT(*) FROM post_insights
        WHERE  processing_status = 'completed'`)
	return n, err
}
