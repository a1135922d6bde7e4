package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"newsdesk/internal/article/models"
	"newsdesk/pkg/domain"
	"newsdesk/pkg/platform/sentinel"
)

// InMemory is the in-memory article store used by unit tests and local
// development. It mirrors the Postgres store's behavior, including slug
// uniqueness and sweep predicates.
type InMemory struct {
	mu       sync.RWMutex
	articles map[domain.ArticleID]*models.Article
	slugs    map[string]domain.ArticleID
}

func NewInMemory() *InMemory {
	return &InMemory{
		articles: make(map[domain.ArticleID]*models.Article),
		slugs:    make(map[string]domain.ArticleID),
	}
}

func cloneArticle(a *models.Article) *models.Article {
	cp := *a
	cp.Tags = append([]string(nil), a.Tags...)
	cp.UpdateHistory = append([]models.HistoryEntry(nil), a.UpdateHistory...)
	return &cp
}

func (s *InMemory) Create(_ context.Context, a *models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.slugs[a.Slug]; taken {
		return sentinel.ErrConflict
	}
	s.articles[a.ID] = cloneArticle(a)
	s.slugs[a.Slug] = a.ID
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id domain.ArticleID) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return cloneArticle(a), nil
}

// FindBySlug never returns soft-deleted articles; the trash view goes
// through List instead.
func (s *InMemory) FindBySlug(_ context.Context, slug string) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.slugs[slug]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	a := s.articles[id]
	if a == nil || a.IsDeleted {
		return nil, sentinel.ErrNotFound
	}
	return cloneArticle(a), nil
}

func (s *InMemory) Update(_ context.Context, a *models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.articles[a.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if current.Slug != a.Slug {
		if owner, taken := s.slugs[a.Slug]; taken && owner != a.ID {
			return sentinel.ErrConflict
		}
		delete(s.slugs, current.Slug)
		s.slugs[a.Slug] = a.ID
	}
	s.articles[a.ID] = cloneArticle(a)
	return nil
}

func (s *InMemory) Delete(_ context.Context, id domain.ArticleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.slugs, a.Slug)
	delete(s.articles, id)
	return nil
}

func (s *InMemory) IncrementViews(_ context.Context, id domain.ArticleID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return 0, sentinel.ErrNotFound
	}
	a.Views++
	return a.Views, nil
}

func matches(a *models.Article, q ListQuery) bool {
	p := q.Predicate
	if a.IsDeleted != p.Deleted {
		return false
	}
	if p.Status != "" && a.Status != p.Status {
		return false
	}
	if p.Author != nil && a.Author != *p.Author {
		return false
	}
	if q.Category != nil && (a.Category == nil || *a.Category != *q.Category) {
		return false
	}
	if q.Tag != "" && !hasTagFold(a.Tags, q.Tag) {
		return false
	}
	if q.Trending != nil && a.IsTrending != *q.Trending {
		return false
	}
	if q.Featured != nil && a.IsFeatured != *q.Featured {
		return false
	}
	if q.Stage != "" && a.Stage != q.Stage {
		return false
	}
	if q.CreatedFrom != nil && a.CreatedAt.Before(*q.CreatedFrom) {
		return false
	}
	if q.CreatedTo != nil && a.CreatedAt.After(*q.CreatedTo) {
		return false
	}
	if q.Search != "" && !searchMatch(a, q.Search) {
		return false
	}
	return true
}

func hasTagFold(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func searchMatch(a *models.Article, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Content), term) ||
		strings.Contains(strings.ToLower(a.Excerpt), term) {
		return true
	}
	for _, t := range a.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// sortFeed orders published-first by publishedAt descending, falling back
// to createdAt descending for unpublished items.
func sortFeed(items []*models.Article) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.PublishedAt != nil && b.PublishedAt != nil:
			if !a.PublishedAt.Equal(*b.PublishedAt) {
				return a.PublishedAt.After(*b.PublishedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		case a.PublishedAt != nil:
			return true
		case b.PublishedAt != nil:
			return false
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

func (s *InMemory) List(_ context.Context, q ListQuery) ([]*models.Article, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []*models.Article
	for _, a := range s.articles {
		if matches(a, q) {
			filtered = append(filtered, cloneArticle(a))
		}
	}
	sortFeed(filtered)

	total := int64(len(filtered))
	start := q.Offset()
	if start >= len(filtered) {
		return []*models.Article{}, total, nil
	}
	end := start + q.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

func (s *InMemory) Stats(_ context.Context, author *domain.UserID) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Stats
	for _, a := range s.articles {
		if author != nil && a.Author != *author {
			continue
		}
		if a.IsDeleted {
			st.Inactive++
			continue
		}
		st.Total++
		st.Views += a.Views
		switch a.Status {
		case models.StatusPublished:
			st.Published++
		case models.StatusDraft:
			st.Drafts++
		case models.StatusReview:
			st.InReview++
		}
		switch a.Stage {
		case models.StageHot:
			st.Hot++
		case models.StageArchive:
			st.Archive++
		case models.StageCold:
			st.Cold++
		}
	}
	return st, nil
}

func (s *InMemory) StageCounts(_ context.Context) (StageCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c StageCounts
	for _, a := range s.articles {
		if a.IsDeleted || a.Status != models.StatusPublished {
			continue
		}
		switch a.Stage {
		case models.StageHot:
			c.Hot++
		case models.StageArchive:
			c.Archive++
		case models.StageCold:
			c.Cold++
		}
	}
	return c, nil
}

// RankBySharedTags returns published, non-deleted articles sharing at least
// one tag with the source, ordered by shared-tag count descending then
// publishedAt descending.
func (s *InMemory) RankBySharedTags(_ context.Context, exclude domain.ArticleID, tags []string, limit int) ([]*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type ranked struct {
		article *models.Article
		shared  int
	}

	var candidates []ranked
	for _, a := range s.articles {
		if a.ID == exclude || !a.IsPublished() {
			continue
		}
		shared := sharedTagCount(a.Tags, tags)
		if shared == 0 {
			continue
		}
		candidates = append(candidates, ranked{article: cloneArticle(a), shared: shared})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].shared != candidates[j].shared {
			return candidates[i].shared > candidates[j].shared
		}
		return laterPublished(candidates[i].article, candidates[j].article)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]*models.Article, len(candidates))
	for i, c := range candidates {
		out[i] = c.article
	}
	return out, nil
}

func sharedTagCount(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, t := range b {
		set[strings.ToLower(t)] = struct{}{}
	}
	n := 0
	for _, t := range a {
		if _, ok := set[strings.ToLower(t)]; ok {
			n++
		}
	}
	return n
}

func laterPublished(a, b *models.Article) bool {
	switch {
	case a.PublishedAt != nil && b.PublishedAt != nil:
		return a.PublishedAt.After(*b.PublishedAt)
	case a.PublishedAt != nil:
		return true
	default:
		return false
	}
}

// RecentByCategory returns the most recently published articles in a
// category, excluding the given IDs.
func (s *InMemory) RecentByCategory(_ context.Context, category domain.CategoryID, exclude []domain.ArticleID, limit int) ([]*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	excluded := make(map[domain.ArticleID]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	var out []*models.Article
	for _, a := range s.articles {
		if _, skip := excluded[a.ID]; skip {
			continue
		}
		if !a.IsPublished() || a.Category == nil || *a.Category != category {
			continue
		}
		out = append(out, cloneArticle(a))
	}
	sort.SliceStable(out, func(i, j int) bool { return laterPublished(out[i], out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// AdvanceStage bulk-moves published, non-deleted articles from one stage to
// the next when publishedAt is at or before the cutoff. The predicate
// re-checks the current stage, so rows already moved by a manual action
// simply don't match.
func (s *InMemory) AdvanceStage(_ context.Context, from, to models.Stage, cutoff time.Time, reason models.ArchiveReason, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var moved int64
	for _, a := range s.articles {
		if a.Stage != from || a.Status != models.StatusPublished || a.IsDeleted {
			continue
		}
		if a.PublishedAt == nil || a.PublishedAt.After(cutoff) {
			continue
		}
		a.Stage = to
		if to == models.StageArchive {
			a.ArchiveReason = reason
			archivedAt := now
			a.ArchivedAt = &archivedAt
		}
		a.UpdatedAt = now
		moved++
	}
	return moved, nil
}

// ArchiveByIDs manually archives the given hot, published articles.
func (s *InMemory) ArchiveByIDs(_ context.Context, ids []domain.ArticleID, reason models.ArchiveReason, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var moved int64
	for _, id := range ids {
		a, ok := s.articles[id]
		if !ok || a.IsDeleted || a.Status != models.StatusPublished || a.Stage != models.StageHot {
			continue
		}
		a.Stage = models.StageArchive
		a.ArchiveReason = reason
		archivedAt := now
		a.ArchivedAt = &archivedAt
		a.UpdatedAt = now
		moved++
	}
	return moved, nil
}

// RestoreStageByIDs manually resets archived or cold articles back to hot.
func (s *InMemory) RestoreStageByIDs(_ context.Context, ids []domain.ArticleID, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var moved int64
	for _, id := range ids {
		a, ok := s.articles[id]
		if !ok || (a.Stage != models.StageArchive && a.Stage != models.StageCold) {
			continue
		}
		a.Stage = models.StageHot
		a.ArchiveReason = ""
		a.ArchivedAt = nil
		a.UpdatedAt = now
		moved++
	}
	return moved, nil
}
