// internal/content/model.go
//
// Core record types for the vibetips content set.
//
// Context
// -------
// Every listable item on the site is derived from one of two shapes:
//
//   - Insight  – one AI-processed post row (posts ⋈ post_insights), the
//     unit shown in the insights table and on detail pages.
//   - Practice – one flattened best-practice or what-not-to-do entry,
//     carried inside an Insight's JSON columns and denormalized into an
//     independent record for the list views.
//
// Records are read-only from the pipeline's perspective: ingestion happens
// elsewhere, and every view (filter, sort, page) derives a new slice rather
// than mutating what it was given.
//
// Notes
// -----
// • Timestamps are epoch milliseconds to stay comparable without TZ math.
// • Oxford commas, two spaces after periods.

package content

// ImpactLevel classifies a practice by severity.  The zero value is
// "unknown" and ranks below every defined level.
type ImpactLevel string

const (
	ImpactCritical   ImpactLevel = "critical"
	ImpactImportant  ImpactLevel = "important"
	ImpactNiceToHave ImpactLevel = "nice_to_have"
)

// Rank maps a level to its sort weight: critical(3) > important(2) >
// nice_to_have(1).  Unknown levels rank 0 so they sort last.
func (l ImpactLevel) Rank() int {
	switch l {
	case ImpactCritical:
		return 3
	case ImpactImportant:
		return 2
	case ImpactNiceToHave:
		return 1
	}
	return 0
}

// ProjectTypeUndefined is the sentinel the ingestion pipeline writes when
// it cannot classify a post.  It is hidden from filter option lists and
// badges but still matches when a caller selects it explicitly.
const ProjectTypeUndefined = "Undefined"

// TechStack groups free-text technology tags by category.  Matching is
// case-sensitive and order-insensitive.
type TechStack struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Platforms  []string `json:"platforms"`
}

// clone returns a deep copy so flattened records never share slices with
// their parent.
func (s TechStack) clone() TechStack {
	return TechStack{
		Languages:  append([]string(nil), s.Languages...),
		Frameworks: append([]string(nil), s.Frameworks...),
		Tools:      append([]string(nil), s.Tools...),
		Platforms:  append([]string(nil), s.Platforms...),
	}
}

// All returns every tag across the four categories, used by free-text
// search.  The returned slice is fresh on every call.
func (s TechStack) All() []string {
	out := make([]string, 0, len(s.Languages)+len(s.Frameworks)+len(s.Tools)+len(s.Platforms))
	out = append(out, s.Languages...)
	out = append(out, s.Frameworks...)
	out = append(out, s.Tools...)
	out = append(out, s.Platforms...)
	return out
}

// PracticeItem is one entry inside an Insight's best_practices or
// what_not_to_do JSON column, before flattening.
type PracticeItem struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Context     string      `json:"context"`
	Reasoning   string      `json:"reasoning"`
	Source      string      `json:"source"`
	ImpactLevel ImpactLevel `json:"impact_level"`
	Tags        []string    `json:"tags"`
}

// Insight mirrors one joined posts ⋈ post_insights row.
type Insight struct {
	ID             string         `db:"id" json:"id"`
	PostID         string         `db:"post_id" json:"postId"`
	PostAuthor     string         `db:"post_author" json:"postAuthor"`
	Title          string         `db:"title" json:"title"`
	Summary        string         `db:"summary" json:"summary"`
	CopyablePrompt string         `db:"copyable_prompt" json:"copyablePrompt,omitempty"`
	ProjectType    string         `db:"project_type" json:"projectType"`
	TypeOfProject  string         `db:"type_of_project" json:"typeOfProject"`
	TypeOfProblem  string         `db:"type_of_problem" json:"typeOfProblem"`
	Tags           StringList     `db:"tags" json:"tags"`
	TechStack      TechStackJSON  `db:"tech_stack" json:"techStack"`
	BestPractices  PracticeList   `db:"best_practices" json:"-"`
	WhatNotToDo    PracticeList   `db:"what_not_to_do" json:"-"`
	RelevanceScore float64        `db:"relevance_score" json:"relevanceScore"`
	Ups            int64          `db:"ups" json:"ups"`
	CreatedAt      int64          `db:"created_at" json:"createdAt"`
	UpdatedAt      int64          `db:"updated_at" json:"updatedAt"`
}

// Practice is one flattened best-practice or what-not-to-do record.  The
// post* fields plus Tags, TechStack, Ups, and CreatedAt are denormalized
// copies of the parent Insight; mutating a Practice never touches it.
type Practice struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Context     string      `json:"context"`
	Reasoning   string      `json:"reasoning"`
	Source      string      `json:"source"`
	ImpactLevel ImpactLevel `json:"impactLevel"`
	Tags        []string    `json:"tags"`

	PostID     string    `json:"postId"`
	PostAuthor string    `json:"postAuthor"`
	PostTitle  string    `json:"postTitle"`
	PostTags   []string  `json:"postTags"`
	TechStack  TechStack `json:"techStack"`
	Ups        int64     `json:"ups"`
	CreatedAt  int64     `json:"createdAt"`
}
