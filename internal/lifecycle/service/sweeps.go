package service

import (
	"context"
	"time"

	articlemodels "newsdesk/internal/article/models"
	articlestore "newsdesk/internal/article/store"
	"newsdesk/internal/audit"
	"newsdesk/internal/lifecycle/models"
	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/requestcontext"
)

const (
	SweepHotToArchive  = "hot_to_archive"
	SweepArchiveToCold = "archive_to_cold"
)

// SweepReport is the outcome of one sweep run.
type SweepReport struct {
	Sweep   string    `json:"sweep"`
	Moved   int64     `json:"moved"`
	Skipped bool      `json:"skipped"`
	RanAt   time.Time `json:"ran_at"`
}

// RunHotToArchive moves published articles whose publish date is older than
// the hot window from hot to archive. A no-op when automation is disabled.
// Idempotent: articles already moved simply stop matching.
func (s *Service) RunHotToArchive(ctx context.Context) (SweepReport, error) {
	return s.runSweep(ctx, SweepHotToArchive,
		func(cfg *models.Config, now time.Time) (int64, error) {
			return s.articles.AdvanceStage(ctx,
				articlemodels.StageHot, articlemodels.StageArchive,
				cfg.HotCutoff(now), articlemodels.ArchiveReasonAutomation, now)
		},
		func(cfg *models.Config, moved int64, now time.Time) {
			cfg.RecordRun(moved, -1, now)
		})
}

// RunArchiveToCold moves published articles whose publish date is older than
// the cold window from archive to cold. The cutoff is measured from the
// original publish date, not from when the article entered archive, so an
// old article can pass straight through hot on a catch-up run.
func (s *Service) RunArchiveToCold(ctx context.Context) (SweepReport, error) {
	return s.runSweep(ctx, SweepArchiveToCold,
		func(cfg *models.Config, now time.Time) (int64, error) {
			return s.articles.AdvanceStage(ctx,
				articlemodels.StageArchive, articlemodels.StageCold,
				cfg.ColdCutoff(now), articlemodels.ArchiveReasonExpired, now)
		},
		func(cfg *models.Config, moved int64, now time.Time) {
			cfg.RecordRun(-1, moved, now)
		})
}

func (s *Service) runSweep(ctx context.Context, name string,
	sweep func(cfg *models.Config, now time.Time) (int64, error),
	recordStats func(cfg *models.Config, moved int64, now time.Time),
) (SweepReport, error) {
	start := time.Now()
	now := requestcontext.Now(ctx)

	cfg, err := s.config.Get(ctx)
	if err != nil {
		s.sweepFailed(name)
		return SweepReport{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load lifecycle config")
	}
	if !cfg.EnableAutomation {
		s.logger.InfoContext(ctx, "lifecycle sweep skipped, automation disabled", "sweep", name)
		return SweepReport{Sweep: name, Skipped: true, RanAt: now}, nil
	}

	moved, err := sweep(cfg, now)
	if err != nil {
		s.sweepFailed(name)
		return SweepReport{}, dErrors.Wrap(err, dErrors.CodeInternal, "lifecycle sweep failed")
	}

	recordStats(cfg, moved, now)
	if err := s.config.Save(ctx, cfg); err != nil {
		s.sweepFailed(name)
		return SweepReport{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record sweep stats")
	}

	if s.metrics != nil {
		s.metrics.IncrementRun(name)
		s.metrics.AddMoved(name, moved)
		s.metrics.ObserveSweep(time.Since(start).Seconds())
	}
	s.logger.InfoContext(ctx, "lifecycle sweep completed", "sweep", name, "moved", moved)
	s.record(ctx, audit.ActionLifecycleSweepRun, map[string]any{"sweep": name, "moved": moved})

	return SweepReport{Sweep: name, Moved: moved, RanAt: now}, nil
}

func (s *Service) sweepFailed(name string) {
	if s.metrics != nil {
		s.metrics.IncrementFailure(name)
	}
}

func requireEditor(ctx context.Context) (*domain.Actor, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !actor.EditorOrAbove() {
		return nil, dErrors.New(dErrors.CodeForbidden, "lifecycle operations require editor role")
	}
	return actor, nil
}

// StageCounts returns per-tier totals for the lifecycle dashboard.
func (s *Service) StageCounts(ctx context.Context) (articlestore.StageCounts, error) {
	if _, err := requireEditor(ctx); err != nil {
		return articlestore.StageCounts{}, err
	}
	counts, err := s.articles.StageCounts(ctx)
	if err != nil {
		return articlestore.StageCounts{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count lifecycle stages")
	}
	return counts, nil
}

// Archive manually archives a batch of hot, published articles. Articles
// not currently eligible are skipped, not errored.
func (s *Service) Archive(ctx context.Context, ids []domain.ArticleID, reason articlemodels.ArchiveReason) (int64, error) {
	if _, err := requireEditor(ctx); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "no article ids supplied")
	}
	if reason == "" {
		reason = articlemodels.ArchiveReasonManual
	} else if _, err := articlemodels.ParseArchiveReason(string(reason)); err != nil {
		return 0, err
	}

	moved, err := s.articles.ArchiveByIDs(ctx, ids, reason, requestcontext.Now(ctx))
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "bulk archive failed")
	}
	s.record(ctx, audit.ActionArticleArchived, map[string]any{
		"requested": len(ids), "archived": moved, "reason": reason,
	})
	return moved, nil
}

// RestoreStage manually resets a batch of archived or cold articles back to
// hot, clearing the archive markers.
func (s *Service) RestoreStage(ctx context.Context, ids []domain.ArticleID) (int64, error) {
	if _, err := requireEditor(ctx); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "no article ids supplied")
	}

	moved, err := s.articles.RestoreStageByIDs(ctx, ids, requestcontext.Now(ctx))
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "bulk stage restore failed")
	}
	s.record(ctx, audit.ActionArticleStageRestored, map[string]any{
		"requested": len(ids), "restored": moved,
	})
	return moved, nil
}
