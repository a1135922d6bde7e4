// Package store holds the article persistence contracts shared by the
// in-memory and Postgres implementations. Services depend on the
// ArticleStore interface declared in the service package; both
// implementations here satisfy it and report infrastructure facts through
// pkg/platform/sentinel.
package store

import (
	"time"

	"newsdesk/internal/article/models"
	"newsdesk/internal/article/policy"
	"newsdesk/pkg/domain"
)

// ListQuery is one composed retrieval: the role-derived predicate plus
// caller-supplied filters and pagination.
type ListQuery struct {
	Predicate policy.Predicate

	Category *domain.CategoryID
	// Tag is an exact, case-insensitive tag match.
	Tag string
	// Search matches case-insensitively across title, tags, content, and
	// excerpt.
	Search   string
	Trending *bool
	Featured *bool
	Stage    models.Stage

	CreatedFrom *time.Time
	CreatedTo   *time.Time

	Page  int
	Limit int
}

// Offset returns the skip count for the query's page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Stats aggregates article counts for the dashboard, optionally scoped to
// one author.
type Stats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Drafts    int64 `json:"drafts"`
	InReview  int64 `json:"in_review"`
	Inactive  int64 `json:"inactive"`
	Hot       int64 `json:"hot"`
	Archive   int64 `json:"archive"`
	Cold      int64 `json:"cold"`
	Views     int64 `json:"views"`
}

// StageCounts holds per-tier totals for the lifecycle dashboard.
type StageCounts struct {
	Hot     int64 `json:"hot"`
	Archive int64 `json:"archive"`
	Cold    int64 `json:"cold"`
}

// SweepResult reports one bulk stage transition.
type SweepResult struct {
	Matched int64
}
