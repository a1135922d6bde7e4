package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsdesk/internal/article/models"
	"newsdesk/pkg/domain"
	"newsdesk/pkg/platform/sentinel"
)

const uniqueViolation = "23505"

// Postgres persists articles in PostgreSQL via pgx.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const articleColumns = `
	id, slug, slug_customized, title, intro, content, excerpt,
	featured_image, image_alt, category, tags, country,
	is_trending, is_featured, show_publish_date, show_in_home_feed,
	status, stage, archive_reason,
	is_deleted, deleted_at, deleted_by,
	author, editor, views, update_history,
	created_at, updated_at, published_at, archived_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var (
		a             models.Article
		id            uuid.UUID
		category      *uuid.UUID
		archiveReason *string
		deletedBy     *uuid.UUID
		author        uuid.UUID
		editor        *uuid.UUID
		history       []byte
	)
	err := row.Scan(
		&id, &a.Slug, &a.SlugCustomized, &a.Title, &a.Intro, &a.Content, &a.Excerpt,
		&a.FeaturedImage, &a.ImageAlt, &category, &a.Tags, &a.Country,
		&a.IsTrending, &a.IsFeatured, &a.ShowPublishDate, &a.ShowInHomeFeed,
		&a.Status, &a.Stage, &archiveReason,
		&a.IsDeleted, &a.DeletedAt, &deletedBy,
		&author, &editor, &a.Views, &history,
		&a.CreatedAt, &a.UpdatedAt, &a.PublishedAt, &a.ArchivedAt,
	)
	if err != nil {
		return nil, err
	}

	a.ID = domain.ArticleID(id)
	a.Author = domain.UserID(author)
	if category != nil {
		c := domain.CategoryID(*category)
		a.Category = &c
	}
	if deletedBy != nil {
		d := domain.UserID(*deletedBy)
		a.DeletedBy = &d
	}
	if editor != nil {
		e := domain.UserID(*editor)
		a.Editor = &e
	}
	if archiveReason != nil {
		a.ArchiveReason = models.ArchiveReason(*archiveReason)
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &a.UpdateHistory); err != nil {
			return nil, fmt.Errorf("decode update history: %w", err)
		}
	}
	return &a, nil
}

func articleArgs(a *models.Article) ([]any, error) {
	history, err := json.Marshal(a.UpdateHistory)
	if err != nil {
		return nil, fmt.Errorf("encode update history: %w", err)
	}

	var category *uuid.UUID
	if a.Category != nil {
		c := uuid.UUID(*a.Category)
		category = &c
	}
	var deletedBy *uuid.UUID
	if a.DeletedBy != nil {
		d := uuid.UUID(*a.DeletedBy)
		deletedBy = &d
	}
	var editor *uuid.UUID
	if a.Editor != nil {
		e := uuid.UUID(*a.Editor)
		editor = &e
	}
	var archiveReason *string
	if a.ArchiveReason != "" {
		r := string(a.ArchiveReason)
		archiveReason = &r
	}

	return []any{
		uuid.UUID(a.ID), a.Slug, a.SlugCustomized, a.Title, a.Intro, a.Content, a.Excerpt,
		a.FeaturedImage, a.ImageAlt, category, a.Tags, a.Country,
		a.IsTrending, a.IsFeatured, a.ShowPublishDate, a.ShowInHomeFeed,
		string(a.Status), string(a.Stage), archiveReason,
		a.IsDeleted, a.DeletedAt, deletedBy,
		uuid.UUID(a.Author), editor, a.Views, history,
		a.CreatedAt, a.UpdatedAt, a.PublishedAt, a.ArchivedAt,
	}, nil
}

func translateWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return sentinel.ErrConflict
	}
	return err
}

func (s *Postgres) Create(ctx context.Context, a *models.Article) error {
	args, err := articleArgs(a)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27,
			$28, $29, $30)
	`
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return translateWriteErr(err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, id domain.ArticleID) (*models.Article, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, uuid.UUID(id))
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return a, err
}

func (s *Postgres) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE slug = $1 AND NOT is_deleted`, slug)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return a, err
}

func (s *Postgres) Update(ctx context.Context, a *models.Article) error {
	args, err := articleArgs(a)
	if err != nil {
		return err
	}
	query := `
		UPDATE articles SET
			slug = $2, slug_customized = $3, title = $4, intro = $5,
			content = $6, excerpt = $7, featured_image = $8, image_alt = $9,
			category = $10, tags = $11, country = $12,
			is_trending = $13, is_featured = $14, show_publish_date = $15,
			show_in_home_feed = $16, status = $17, stage = $18,
			archive_reason = $19, is_deleted = $20, deleted_at = $21,
			deleted_by = $22, author = $23, editor = $24, views = $25,
			update_history = $26, created_at = $27, updated_at = $28,
			published_at = $29, archived_at = $30
		WHERE id = $1
	`
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return translateWriteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, id domain.ArticleID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, uuid.UUID(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) IncrementViews(ctx context.Context, id domain.ArticleID) (int64, error) {
	var views int64
	err := s.pool.QueryRow(ctx,
		`UPDATE articles SET views = views + 1 WHERE id = $1 RETURNING views`,
		uuid.UUID(id)).Scan(&views)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, sentinel.ErrNotFound
	}
	return views, err
}

// listClauses builds the WHERE fragment and argument list for a ListQuery.
// The deleted flag is always pinned so default listings and the trash view
// stay disjoint.
func listClauses(q ListQuery) (string, []any) {
	clauses := []string{"is_deleted = $1"}
	args := []any{q.Predicate.Deleted}

	add := func(clause string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if q.Predicate.Status != "" {
		add("status = $%d", string(q.Predicate.Status))
	}
	if q.Predicate.Author != nil {
		add("author = $%d", uuid.UUID(*q.Predicate.Author))
	}
	if q.Category != nil {
		add("category = $%d", uuid.UUID(*q.Category))
	}
	if q.Tag != "" {
		add("EXISTS (SELECT 1 FROM unnest(tags) t WHERE lower(t) = lower($%d))", q.Tag)
	}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(title ILIKE $%[1]d OR content ILIKE $%[1]d OR excerpt ILIKE $%[1]d OR EXISTS (SELECT 1 FROM unnest(tags) t WHERE t ILIKE $%[1]d))", n))
	}
	if q.Trending != nil {
		add("is_trending = $%d", *q.Trending)
	}
	if q.Featured != nil {
		add("is_featured = $%d", *q.Featured)
	}
	if q.Stage != "" {
		add("stage = $%d", string(q.Stage))
	}
	if q.CreatedFrom != nil {
		add("created_at >= $%d", *q.CreatedFrom)
	}
	if q.CreatedTo != nil {
		add("created_at <= $%d", *q.CreatedTo)
	}

	return strings.Join(clauses, " AND "), args
}

func (s *Postgres) List(ctx context.Context, q ListQuery) ([]*models.Article, int64, error) {
	where, args := listClauses(q)

	var total int64
	if err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM articles WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT `+articleColumns+`
		FROM articles
		WHERE %s
		ORDER BY published_at DESC NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset())

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []*models.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (s *Postgres) Stats(ctx context.Context, author *domain.UserID) (Stats, error) {
	var authorArg *uuid.UUID
	if author != nil {
		a := uuid.UUID(*author)
		authorArg = &a
	}

	var st Stats
	err := s.pool.QueryRow(ctx, `
		SELECT
			count(*) FILTER (WHERE NOT is_deleted),
			count(*) FILTER (WHERE NOT is_deleted AND status = 'published'),
			count(*) FILTER (WHERE NOT is_deleted AND status = 'draft'),
			count(*) FILTER (WHERE NOT is_deleted AND status = 'review'),
			count(*) FILTER (WHERE is_deleted),
			count(*) FILTER (WHERE NOT is_deleted AND stage = 'hot'),
			count(*) FILTER (WHERE NOT is_deleted AND stage = 'archive'),
			count(*) FILTER (WHERE NOT is_deleted AND stage = 'cold'),
			coalesce(sum(views) FILTER (WHERE NOT is_deleted), 0)
		FROM articles
		WHERE $1::uuid IS NULL OR author = $1
	`, authorArg).Scan(
		&st.Total, &st.Published, &st.Drafts, &st.InReview, &st.Inactive,
		&st.Hot, &st.Archive, &st.Cold, &st.Views,
	)
	return st, err
}

func (s *Postgres) StageCounts(ctx context.Context) (StageCounts, error) {
	var c StageCounts
	err := s.pool.QueryRow(ctx, `
		SELECT
			count(*) FILTER (WHERE stage = 'hot'),
			count(*) FILTER (WHERE stage = 'archive'),
			count(*) FILTER (WHERE stage = 'cold')
		FROM articles
		WHERE status = 'published' AND NOT is_deleted
	`).Scan(&c.Hot, &c.Archive, &c.Cold)
	return c, err
}

// RankBySharedTags ranks published articles by how many tags they share with
// the source, breaking ties on publish recency. Tag comparison is
// case-insensitive.
func (s *Postgres) RankBySharedTags(ctx context.Context, exclude domain.ArticleID, tags []string, limit int) ([]*models.Article, error) {
	lowered := make([]string, len(tags))
	for i, t := range tags {
		lowered[i] = strings.ToLower(t)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE id <> $1
		  AND status = 'published' AND NOT is_deleted
		  AND EXISTS (SELECT 1 FROM unnest(tags) t WHERE lower(t) = ANY($2::text[]))
		ORDER BY
			(SELECT count(*) FROM unnest(tags) t WHERE lower(t) = ANY($2::text[])) DESC,
			published_at DESC NULLS LAST
		LIMIT $3
	`, uuid.UUID(exclude), lowered, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectArticles(rows)
}

// RecentByCategory returns the latest published articles in a category,
// excluding the given IDs.
func (s *Postgres) RecentByCategory(ctx context.Context, category domain.CategoryID, exclude []domain.ArticleID, limit int) ([]*models.Article, error) {
	excluded := make([]uuid.UUID, len(exclude))
	for i, id := range exclude {
		excluded[i] = uuid.UUID(id)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE category = $1
		  AND status = 'published' AND NOT is_deleted
		  AND NOT (id = ANY($2::uuid[]))
		ORDER BY published_at DESC NULLS LAST
		LIMIT $3
	`, uuid.UUID(category), excluded, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectArticles(rows)
}

func collectArticles(rows pgx.Rows) ([]*models.Article, error) {
	items := []*models.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// AdvanceStage bulk-moves published articles whose publish date is at or
// before the cutoff from one stage to the next. A single UPDATE keeps the
// sweep atomic; rows moved manually in the meantime no longer match the
// stage predicate and are skipped.
func (s *Postgres) AdvanceStage(ctx context.Context, from, to models.Stage, cutoff time.Time, reason models.ArchiveReason, now time.Time) (int64, error) {
	query := `
		UPDATE articles
		SET stage = $1, updated_at = $2
		WHERE stage = $3
		  AND status = 'published' AND NOT is_deleted
		  AND published_at IS NOT NULL AND published_at <= $4
	`
	args := []any{string(to), now, string(from), cutoff}
	if to == models.StageArchive {
		query = `
			UPDATE articles
			SET stage = $1, updated_at = $2, archive_reason = $5, archived_at = $2
			WHERE stage = $3
			  AND status = 'published' AND NOT is_deleted
			  AND published_at IS NOT NULL AND published_at <= $4
		`
		args = append(args, string(reason))
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ArchiveByIDs manually archives the given hot, published articles;
// ineligible IDs are skipped rather than rejected.
func (s *Postgres) ArchiveByIDs(ctx context.Context, ids []domain.ArticleID, reason models.ArchiveReason, now time.Time) (int64, error) {
	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = uuid.UUID(id)
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE articles
		SET stage = 'archive', archive_reason = $1, archived_at = $2, updated_at = $2
		WHERE id = ANY($3::uuid[])
		  AND stage = 'hot'
		  AND status = 'published' AND NOT is_deleted
	`, string(reason), now, raw)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// RestoreStageByIDs resets archived or cold articles back to hot.
func (s *Postgres) RestoreStageByIDs(ctx context.Context, ids []domain.ArticleID, now time.Time) (int64, error) {
	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = uuid.UUID(id)
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE articles
		SET stage = 'hot', archive_reason = NULL, archived_at = NULL, updated_at = $1
		WHERE id = ANY($2::uuid[])
		  AND stage IN ('archive', 'cold')
	`, now, raw)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
