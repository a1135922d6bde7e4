// Package audit records editorial actions to a durable trail. Recording is
// fire-and-forget: a full pipeline drops entries rather than slowing or
// failing the operation that emitted them.
package audit

import (
	"time"

	"newsdesk/pkg/domain"
)

// Action identifies what happened. One constant per recorded operation.
type Action string

const (
	ActionArticleCreated    Action = "article_created"
	ActionArticleUpdated    Action = "article_updated"
	ActionArticleSubmitted  Action = "article_submitted"
	ActionArticleApproved   Action = "article_approved"
	ActionArticleRejected   Action = "article_rejected"
	ActionArticlePublished  Action = "article_published"
	ActionArticleUnpublished Action = "article_unpublished"
	ActionArticleSoftDeleted Action = "article_soft_deleted"
	ActionArticleRestored   Action = "article_restored"
	ActionArticleHardDeleted Action = "article_hard_deleted"

	ActionArticleArchived      Action = "article_archived"
	ActionArticleStageRestored Action = "article_stage_restored"
	ActionLifecycleSweepRun    Action = "lifecycle_sweep_run"
	ActionLifecycleConfigSaved Action = "lifecycle_config_saved"

	ActionHomepageUpdated Action = "homepage_updated"
)

// TargetType names the kind of entity an entry refers to.
type TargetType string

const (
	TargetArticle   TargetType = "article"
	TargetLifecycle TargetType = "lifecycle"
	TargetHomepage  TargetType = "homepage"
)

// Entry is one recorded action. The actor fields are a snapshot taken at
// record time, so the trail stays meaningful after accounts change or
// disappear.
type Entry struct {
	ID         domain.AuditID `json:"id"`
	Action     Action         `json:"action"`
	TargetType TargetType     `json:"target_type"`
	TargetID   string         `json:"target_id"`
	// TargetName is a human-readable label (article slug, "homepage")
	// snapshotted at record time, so the trail reads without joins even
	// after the target is renamed or deleted.
	TargetName string `json:"target_name,omitempty"`

	ActorID   *domain.UserID `json:"actor_id,omitempty"`
	ActorName string         `json:"actor_name,omitempty"`
	ActorRole string         `json:"actor_role,omitempty"`

	Detail map[string]any `json:"detail,omitempty"`

	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}
