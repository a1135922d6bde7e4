package models

import (
	"time"
	"unicode/utf8"

	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	pstrings "newsdesk/pkg/platform/strings"
)

// HistoryEntry records one mutation for the article's audit trail.
// It captures which fields changed, not their values.
type HistoryEntry struct {
	UpdatedBy domain.UserID `json:"updated_by"`
	UpdatedAt time.Time     `json:"updated_at"`
	Changes   []string      `json:"changes"`
}

// Article is the aggregate root of the editorial workflow.
//
// Invariants:
//   - Slug is globally unique (store-enforced) and URL-safe: lowercase
//     [a-z0-9-]+ with no leading or trailing hyphen
//   - Title is at most 200 characters, Intro at most 500
//   - PublishedAt is set exactly once, the first time Status becomes
//     published, and never cleared afterwards
//   - Author is set at creation and immutable
//   - Stage applies only while Status=published and IsDeleted=false, and
//     moves forward (hot -> archive -> cold) except via manual restore
//   - IsDeleted is set together with Status=inactive on soft delete
type Article struct {
	ID   domain.ArticleID `json:"id"`
	Slug string           `json:"slug"`
	// SlugCustomized is true once a slug was supplied explicitly; title
	// edits stop re-deriving the slug from that point on.
	SlugCustomized bool `json:"slug_customized"`

	Title         string             `json:"title"`
	Intro         string             `json:"intro"`
	Content       string             `json:"content"`
	Excerpt       string             `json:"excerpt"`
	FeaturedImage string             `json:"featured_image"`
	ImageAlt      string             `json:"image_alt"`
	Category      *domain.CategoryID `json:"category,omitempty"`
	Tags          []string           `json:"tags"`
	Country       string             `json:"country"`

	IsTrending      bool `json:"is_trending"`
	IsFeatured      bool `json:"is_featured"`
	ShowPublishDate bool `json:"show_publish_date"`
	ShowInHomeFeed  bool `json:"show_in_home_feed"`

	Status        Status        `json:"status"`
	Stage         Stage         `json:"stage"`
	ArchiveReason ArchiveReason `json:"archive_reason,omitempty"`

	IsDeleted bool           `json:"is_deleted"`
	DeletedAt *time.Time     `json:"deleted_at,omitempty"`
	DeletedBy *domain.UserID `json:"deleted_by,omitempty"`

	Author domain.UserID  `json:"author"`
	Editor *domain.UserID `json:"editor,omitempty"`

	Views         int64          `json:"views"`
	UpdateHistory []HistoryEntry `json:"update_history"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
}

// NewArticleParams carries validated input for NewArticle.
type NewArticleParams struct {
	Title         string
	Slug          string
	Intro         string
	Content       string
	Excerpt       string
	FeaturedImage string
	ImageAlt      string
	Category      *domain.CategoryID
	Tags          []string
	Country       string

	IsTrending      bool
	IsFeatured      bool
	ShowPublishDate bool
	ShowInHomeFeed  bool

	// PublishNow requests skipping review. Honored only for editors,
	// superadmins, and writers with the direct-publish permission.
	PublishNow bool
}

// NewArticle constructs a draft article owned by the creator. Writers with
// direct publish enabled (and editors and superadmins) may publish
// immediately via PublishNow.
func NewArticle(id domain.ArticleID, creator *domain.Actor, p NewArticleParams, now time.Time) (*Article, error) {
	if creator == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if p.Title == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "article title is required")
	}
	if utf8.RuneCountInString(p.Title) > 200 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "title cannot exceed 200 characters")
	}
	if utf8.RuneCountInString(p.Intro) > 500 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "intro cannot exceed 500 characters")
	}
	if p.Content == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "article content is required")
	}
	if p.FeaturedImage == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "featured image is required")
	}

	slug := p.Slug
	customized := slug != ""
	if customized {
		slug = Slugify(slug)
	} else {
		slug = Slugify(p.Title)
	}
	if slug == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "slug cannot be empty")
	}

	excerpt := p.Excerpt
	if excerpt == "" {
		excerpt = DeriveExcerpt(p.Content)
	}

	a := &Article{
		ID:              id,
		Slug:            slug,
		SlugCustomized:  customized,
		Title:           p.Title,
		Intro:           p.Intro,
		Content:         p.Content,
		Excerpt:         excerpt,
		FeaturedImage:   p.FeaturedImage,
		ImageAlt:        p.ImageAlt,
		Category:        p.Category,
		Tags:            pstrings.DedupeAndTrim(p.Tags),
		Country:         p.Country,
		IsTrending:      p.IsTrending,
		IsFeatured:      p.IsFeatured,
		ShowPublishDate: p.ShowPublishDate,
		ShowInHomeFeed:  p.ShowInHomeFeed,
		Status:          StatusDraft,
		Author:          creator.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if p.PublishNow {
		if !creator.EditorOrAbove() && !creator.DirectPublish {
			return nil, dErrors.New(dErrors.CodeForbidden, "direct publish is not enabled for this account")
		}
		a.Status = StatusPublished
		a.PublishedAt = &now
		a.Stage = StageHot
	}

	return a, nil
}

// IsPublished reports whether the article is live.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished && !a.IsDeleted
}

// -----------------------------------------------------------------------------
// Editorial transitions
// -----------------------------------------------------------------------------

// CanSubmit checks the submit-for-review guard: only the author (or an
// editor or superadmin) may submit, and only from draft.
func (a *Article) CanSubmit(actor *domain.Actor) error {
	if actor == nil {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !actor.EditorOrAbove() && actor.ID != a.Author {
		return dErrors.New(dErrors.CodeForbidden, "you can only submit your own articles")
	}
	if a.Status != StatusDraft {
		return dErrors.New(dErrors.CodeConflict, "only drafts can be submitted for review")
	}
	return nil
}

// ApplySubmit moves the article into review. Call CanSubmit first.
func (a *Article) ApplySubmit(now time.Time) {
	a.Status = StatusReview
	a.UpdatedAt = now
}

// CanApprove checks the approve guard: editor or superadmin, from review or
// draft only.
func (a *Article) CanApprove(actor *domain.Actor) error {
	if !actor.EditorOrAbove() {
		return dErrors.New(dErrors.CodeForbidden, "approving articles requires editor role")
	}
	if a.Status != StatusReview && a.Status != StatusDraft {
		return dErrors.New(dErrors.CodeConflict, "article is not pending review")
	}
	return nil
}

// ApplyApprove publishes the article, stamping the approving editor.
// PublishedAt is set only on the first publish and the stage is set to hot
// only if the article has never entered the lifecycle before.
func (a *Article) ApplyApprove(actor *domain.Actor, now time.Time) {
	a.Status = StatusPublished
	a.Editor = &actor.ID
	if a.PublishedAt == nil {
		a.PublishedAt = &now
	}
	if a.Stage == "" {
		a.Stage = StageHot
	}
	a.UpdatedAt = now
}

// CanReject checks the reject guard: editor or superadmin.
// Rejection is allowed from any status; the supplied reason is recorded in
// the audit trail, never on the entity.
func (a *Article) CanReject(actor *domain.Actor) error {
	if !actor.EditorOrAbove() {
		return dErrors.New(dErrors.CodeForbidden, "rejecting articles requires editor role")
	}
	return nil
}

// ApplyReject returns the article to draft. No timestamps are cleared.
func (a *Article) ApplyReject(now time.Time) {
	a.Status = StatusDraft
	a.UpdatedAt = now
}

// CanTogglePublish checks the publish/unpublish guard: editor or superadmin.
func (a *Article) CanTogglePublish(actor *domain.Actor) error {
	if !actor.EditorOrAbove() {
		return dErrors.New(dErrors.CodeForbidden, "publishing articles requires editor role")
	}
	return nil
}

// ApplyTogglePublish flips between published and draft, returning the action
// taken ("publish" or "unpublish"). Re-publishing never resets PublishedAt.
func (a *Article) ApplyTogglePublish(actor *domain.Actor, now time.Time) string {
	if a.Status == StatusPublished {
		a.Status = StatusDraft
		a.UpdatedAt = now
		return "unpublish"
	}
	a.Status = StatusPublished
	if a.PublishedAt == nil {
		a.PublishedAt = &now
		a.Editor = &actor.ID
	}
	if a.Stage == "" {
		a.Stage = StageHot
	}
	a.UpdatedAt = now
	return "publish"
}

// -----------------------------------------------------------------------------
// Soft delete / restore
// -----------------------------------------------------------------------------

// CanSoftDelete checks the soft-delete guard: superadmin only, not already
// deleted.
func (a *Article) CanSoftDelete(actor *domain.Actor) error {
	if !actor.IsSuperadmin() {
		return dErrors.New(dErrors.CodeForbidden, "deleting articles requires superadmin role")
	}
	if a.IsDeleted {
		return dErrors.New(dErrors.CodeConflict, "article is already deleted")
	}
	return nil
}

// ApplySoftDelete hides the article: IsDeleted plus Status=inactive are set
// together so default listings exclude it on either predicate.
func (a *Article) ApplySoftDelete(actor *domain.Actor, now time.Time) {
	a.IsDeleted = true
	a.DeletedAt = &now
	a.DeletedBy = &actor.ID
	a.Status = StatusInactive
	a.UpdatedAt = now
}

// CanRestore checks the restore guard: superadmin only, must be deleted.
func (a *Article) CanRestore(actor *domain.Actor) error {
	if !actor.IsSuperadmin() {
		return dErrors.New(dErrors.CodeForbidden, "restoring articles requires superadmin role")
	}
	if !a.IsDeleted {
		return dErrors.New(dErrors.CodeConflict, "article is not deleted")
	}
	return nil
}

// ApplyRestore brings a soft-deleted article back as a draft for re-review.
func (a *Article) ApplyRestore(now time.Time) {
	a.IsDeleted = false
	a.DeletedAt = nil
	a.DeletedBy = nil
	a.Status = StatusDraft
	a.UpdatedAt = now
}

// CanHardDelete checks the permanent-delete guard: superadmin only.
// Published articles may be hard-deleted too; the earlier restriction on
// published content was removed on purpose.
func (a *Article) CanHardDelete(actor *domain.Actor) error {
	if !actor.IsSuperadmin() {
		return dErrors.New(dErrors.CodeForbidden, "deleting articles requires superadmin role")
	}
	return nil
}

// -----------------------------------------------------------------------------
// Lifecycle stage
// -----------------------------------------------------------------------------

// CanArchive checks that the article is live and not already past hot.
func (a *Article) CanArchive() error {
	if !a.IsPublished() {
		return dErrors.New(dErrors.CodeConflict, "only published articles move through the lifecycle")
	}
	if a.Stage != StageHot {
		return dErrors.New(dErrors.CodeConflict, "article is already archived")
	}
	return nil
}

// ApplyArchive moves hot -> archive with the given reason.
func (a *Article) ApplyArchive(reason ArchiveReason, now time.Time) {
	a.Stage = StageArchive
	a.ArchiveReason = reason
	a.ArchivedAt = &now
	a.UpdatedAt = now
}

// CanRestoreStage checks that the article sits in archive or cold.
func (a *Article) CanRestoreStage() error {
	if a.Stage != StageArchive && a.Stage != StageCold {
		return dErrors.New(dErrors.CodeConflict, "article is not archived")
	}
	return nil
}

// ApplyRestoreStage resets an archived or cold article back to hot,
// clearing the archive markers. This is the only backward stage move.
func (a *Article) ApplyRestoreStage(now time.Time) {
	a.Stage = StageHot
	a.ArchiveReason = ""
	a.ArchivedAt = nil
	a.UpdatedAt = now
}

// -----------------------------------------------------------------------------
// Updates
// -----------------------------------------------------------------------------

// CanUpdate checks the edit guard: editors and superadmins may edit any
// article; writers only their own, and only while in draft.
func (a *Article) CanUpdate(actor *domain.Actor) error {
	if actor == nil {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if actor.EditorOrAbove() {
		return nil
	}
	if a.Author != actor.ID {
		return dErrors.New(dErrors.CodeForbidden, "you can only edit your own articles")
	}
	if a.Status != StatusDraft {
		return dErrors.New(dErrors.CodeForbidden, "you can only edit draft articles")
	}
	return nil
}

// RecordUpdate appends a history entry naming the changed fields.
func (a *Article) RecordUpdate(actor *domain.Actor, changed []string, now time.Time) {
	a.UpdateHistory = append(a.UpdateHistory, HistoryEntry{
		UpdatedBy: actor.ID,
		UpdatedAt: now,
		Changes:   changed,
	})
	a.UpdatedAt = now
}

// RetitleSlug re-derives the slug after a title change, unless the slug was
// ever customized.
func (a *Article) RetitleSlug() {
	if !a.SlugCustomized {
		a.Slug = Slugify(a.Title)
	}
}

// SetSlug applies an explicitly supplied slug, sanitized, and locks it
// against future re-derivation.
func (a *Article) SetSlug(slug string) {
	a.Slug = Slugify(slug)
	a.SlugCustomized = true
}
