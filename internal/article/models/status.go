package models

import dErrors "newsdesk/pkg/domain-errors"

// Status is the editorial workflow state of an article.
//
// Transitions (guarded by the Can*/Apply* pairs on Article):
//
//	draft -> review          submit (author or editor+)
//	review|draft -> published approve (editor+)
//	any -> draft             reject (editor+)
//	published <-> draft      publish toggle (editor+)
//	any -> inactive          soft delete (superadmin, sets IsDeleted)
//	inactive -> draft        restore (superadmin, clears IsDeleted)
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusPublished Status = "published"
	StatusInactive  Status = "inactive"
	StatusRejected  Status = "rejected"
)

var validStatuses = map[Status]bool{
	StatusDraft:     true,
	StatusReview:    true,
	StatusPublished: true,
	StatusInactive:  true,
	StatusRejected:  true,
}

// ParseStatus constructs a Status from external input.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !validStatuses[st] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid article status")
	}
	return st, nil
}

func (s Status) IsValid() bool { return validStatuses[s] }

func (s Status) String() string { return string(s) }

// Stage is the retention tier of a published article, orthogonal to Status.
// Stages only move forward (hot -> archive -> cold) except for explicit
// manual restore, which resets to hot.
type Stage string

const (
	StageHot     Stage = "hot"
	StageArchive Stage = "archive"
	StageCold    Stage = "cold"
)

var validStages = map[Stage]bool{
	StageHot:     true,
	StageArchive: true,
	StageCold:    true,
}

// ParseStage constructs a Stage from external input.
func ParseStage(s string) (Stage, error) {
	st := Stage(s)
	if !validStages[st] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid lifecycle stage")
	}
	return st, nil
}

func (s Stage) IsValid() bool { return validStages[s] }

func (s Stage) String() string { return string(s) }

// ArchiveReason records why an article entered the archive tier.
type ArchiveReason string

const (
	ArchiveReasonManual     ArchiveReason = "manual"
	ArchiveReasonAutomation ArchiveReason = "automation"
	ArchiveReasonExpired    ArchiveReason = "expired"
)

var validArchiveReasons = map[ArchiveReason]bool{
	ArchiveReasonManual:     true,
	ArchiveReasonAutomation: true,
	ArchiveReasonExpired:    true,
}

// ParseArchiveReason constructs an ArchiveReason from external input.
func ParseArchiveReason(s string) (ArchiveReason, error) {
	r := ArchiveReason(s)
	if !validArchiveReasons[r] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid archive reason")
	}
	return r, nil
}
