package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	articlemodels "newsdesk/internal/article/models"
	articlestore "newsdesk/internal/article/store"
	"newsdesk/internal/audit"
	"newsdesk/internal/lifecycle/models"
	"newsdesk/internal/lifecycle/service"
	"newsdesk/internal/lifecycle/service/mocks"
	"newsdesk/internal/lifecycle/store"
	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/requestcontext"
)

type LifecycleSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	articles *articlestore.InMemory
	configs  *store.InMemory
	recorder *mocks.MockRecorder
	service  *service.Service
	now      time.Time
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(LifecycleSuite))
}

func (s *LifecycleSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.articles = articlestore.NewInMemory()
	s.configs = store.NewInMemory()
	s.recorder = mocks.NewMockRecorder(s.ctrl)
	s.now = time.Date(2026, 6, 15, 3, 0, 0, 0, time.UTC)
	s.service = service.New(s.configs, s.articles, service.WithRecorder(s.recorder))
}

func (s *LifecycleSuite) allowAuditing() {
	s.recorder.EXPECT().
		Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes()
}

func (s *LifecycleSuite) ctxFor(actor *domain.Actor) context.Context {
	ctx := requestcontext.WithActor(context.Background(), actor)
	return requestcontext.WithTime(ctx, s.now)
}

func (s *LifecycleSuite) superadmin() *domain.Actor {
	return &domain.Actor{ID: domain.NewUserID(), Name: "root", Role: domain.RoleSuperadmin}
}

func (s *LifecycleSuite) publishedDaysAgo(slug string, days int, stage articlemodels.Stage) *articlemodels.Article {
	publishedAt := s.now.AddDate(0, 0, -days)
	a := &articlemodels.Article{
		ID:            domain.NewArticleID(),
		Slug:          slug,
		Title:         "Title " + slug,
		Content:       "Body " + slug,
		FeaturedImage: "https://img.example/x.jpg",
		Status:        articlemodels.StatusPublished,
		Stage:         stage,
		Author:        domain.NewUserID(),
		PublishedAt:   &publishedAt,
		CreatedAt:     publishedAt,
		UpdatedAt:     publishedAt,
	}
	s.Require().NoError(s.articles.Create(context.Background(), a))
	return a
}

func (s *LifecycleSuite) TestConfigDefaults() {
	s.Run("first read creates the singleton with defaults", func() {
		cfg, err := s.service.GetConfig(s.ctxFor(s.superadmin()))
		s.Require().NoError(err)
		s.Equal(models.DefaultHotToArchiveDays, cfg.HotToArchiveDays)
		s.Equal(models.DefaultArchiveToColdDays, cfg.ArchiveToColdDays)
		s.True(cfg.EnableAutomation)
		s.Nil(cfg.LastHotToArchiveRun)
		s.Nil(cfg.LastArchiveToColdRun)
	})

	s.Run("anonymous is rejected", func() {
		_, err := s.service.GetConfig(s.ctxFor(nil))
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("editors may not read the config", func() {
		editor := &domain.Actor{ID: domain.NewUserID(), Role: domain.RoleEditor}
		_, err := s.service.GetConfig(s.ctxFor(editor))
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func (s *LifecycleSuite) TestUpdateConfig() {
	admin := s.superadmin()

	s.Run("tunables are updated and audited", func() {
		s.recorder.EXPECT().Record(gomock.Any(), audit.ActionLifecycleConfigSaved,
			audit.TargetLifecycle, "lifecycle", "lifecycle config",
			map[string]any{"changed": []string{"hot_to_archive_days", "enable_automation"}})

		days := 30
		off := false
		cfg, err := s.service.UpdateConfig(s.ctxFor(admin), models.UpdateConfigRequest{
			HotToArchiveDays: &days,
			EnableAutomation: &off,
		})
		s.Require().NoError(err)
		s.Equal(30, cfg.HotToArchiveDays)
		s.False(cfg.EnableAutomation)
		s.Require().NotNil(cfg.UpdatedBy)
		s.Equal(admin.ID, *cfg.UpdatedBy)
	})

	s.Run("a no-op update is not audited", func() {
		days := 30
		_, err := s.service.UpdateConfig(s.ctxFor(admin), models.UpdateConfigRequest{
			HotToArchiveDays: &days,
		})
		s.Require().NoError(err)
	})

	s.Run("out-of-range values fail validation", func() {
		days := 400
		_, err := s.service.UpdateConfig(s.ctxFor(admin), models.UpdateConfigRequest{
			HotToArchiveDays: &days,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		cold := 10
		_, err = s.service.UpdateConfig(s.ctxFor(admin), models.UpdateConfigRequest{
			ArchiveToColdDays: &cold,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *LifecycleSuite) TestHotToArchiveSweep() {
	s.allowAuditing()

	old := s.publishedDaysAgo("ninety-one-days-old", 91, articlemodels.StageHot)
	fresh := s.publishedDaysAgo("fresh-piece", 5, articlemodels.StageHot)

	report, err := s.service.RunHotToArchive(s.ctxFor(nil))
	s.Require().NoError(err)
	s.Equal(int64(1), report.Moved)
	s.False(report.Skipped)

	moved, err := s.articles.FindByID(context.Background(), old.ID)
	s.Require().NoError(err)
	s.Equal(articlemodels.StageArchive, moved.Stage)
	s.Equal(articlemodels.ArchiveReasonAutomation, moved.ArchiveReason)
	s.Require().NotNil(moved.ArchivedAt)
	s.Equal(s.now, *moved.ArchivedAt)

	untouched, err := s.articles.FindByID(context.Background(), fresh.ID)
	s.Require().NoError(err)
	s.Equal(articlemodels.StageHot, untouched.Stage)

	s.Run("run stats land on the config", func() {
		cfg, err := s.configs.Get(context.Background())
		s.Require().NoError(err)
		s.Equal(int64(1), cfg.LastRunArchived)
		s.Require().NotNil(cfg.LastHotToArchiveRun)
		s.Equal(s.now, *cfg.LastHotToArchiveRun)
		s.Nil(cfg.LastArchiveToColdRun)
	})

	s.Run("a second run finds nothing to move", func() {
		report, err := s.service.RunHotToArchive(s.ctxFor(nil))
		s.Require().NoError(err)
		s.Zero(report.Moved)
	})
}

func (s *LifecycleSuite) TestArchiveToColdSweep() {
	s.allowAuditing()

	ancient := s.publishedDaysAgo("two-years-archived", 800, articlemodels.StageArchive)
	recent := s.publishedDaysAgo("recently-archived", 100, articlemodels.StageArchive)

	report, err := s.service.RunArchiveToCold(s.ctxFor(nil))
	s.Require().NoError(err)
	s.Equal(int64(1), report.Moved)

	cold, err := s.articles.FindByID(context.Background(), ancient.ID)
	s.Require().NoError(err)
	s.Equal(articlemodels.StageCold, cold.Stage)

	stillArchived, err := s.articles.FindByID(context.Background(), recent.ID)
	s.Require().NoError(err)
	s.Equal(articlemodels.StageArchive, stillArchived.Stage)

	s.Run("cooled count does not wipe the archived count", func() {
		cfg, err := s.configs.Get(context.Background())
		s.Require().NoError(err)
		s.Equal(int64(1), cfg.LastRunCooled)
	})
}

func (s *LifecycleSuite) TestSweepsKeepSeparateTimestamps() {
	s.allowAuditing()

	s.publishedDaysAgo("monthly-candidate", 800, articlemodels.StageArchive)
	coldRun := s.now
	_, err := s.service.RunArchiveToCold(s.ctxFor(nil))
	s.Require().NoError(err)

	// A later daily run must not clobber the record of the monthly run.
	s.now = s.now.AddDate(0, 0, 3)
	s.publishedDaysAgo("daily-candidate", 120, articlemodels.StageHot)
	_, err = s.service.RunHotToArchive(s.ctxFor(nil))
	s.Require().NoError(err)

	cfg, err := s.configs.Get(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(cfg.LastArchiveToColdRun)
	s.Equal(coldRun, *cfg.LastArchiveToColdRun)
	s.Require().NotNil(cfg.LastHotToArchiveRun)
	s.Equal(s.now, *cfg.LastHotToArchiveRun)
}

func (s *LifecycleSuite) TestAutomationDisabled() {
	s.allowAuditing()
	admin := s.superadmin()

	off := false
	_, err := s.service.UpdateConfig(s.ctxFor(admin), models.UpdateConfigRequest{EnableAutomation: &off})
	s.Require().NoError(err)

	old := s.publishedDaysAgo("should-stay-hot", 200, articlemodels.StageHot)

	report, err := s.service.RunHotToArchive(s.ctxFor(nil))
	s.Require().NoError(err)
	s.True(report.Skipped)
	s.Zero(report.Moved)

	got, err := s.articles.FindByID(context.Background(), old.ID)
	s.Require().NoError(err)
	s.Equal(articlemodels.StageHot, got.Stage)
}

// A sweep against an article older than both windows passes straight
// through: the daily run archives it, the monthly run cools it, both keyed
// off the original publish date.
func (s *LifecycleSuite) TestCatchUpSweeps() {
	s.allowAuditing()

	relic := s.publishedDaysAgo("very-old-relic", 1000, articlemodels.StageHot)

	_, err := s.service.RunHotToArchive(s.ctxFor(nil))
	s.Require().NoError(err)
	_, err = s.service.RunArchiveToCold(s.ctxFor(nil))
	s.Require().NoError(err)

	got, err := s.articles.FindByID(context.Background(), relic.ID)
	s.Require().NoError(err)
	s.Equal(articlemodels.StageCold, got.Stage)
}

func (s *LifecycleSuite) TestBulkArchive() {
	s.allowAuditing()
	editor := &domain.Actor{ID: domain.NewUserID(), Role: domain.RoleEditor}

	hot := s.publishedDaysAgo("manual-target", 5, articlemodels.StageHot)
	already := s.publishedDaysAgo("already-archived", 5, articlemodels.StageArchive)

	s.Run("eligible articles move, ineligible are skipped", func() {
		moved, err := s.service.Archive(s.ctxFor(editor),
			[]domain.ArticleID{hot.ID, already.ID}, articlemodels.ArchiveReasonManual)
		s.Require().NoError(err)
		s.Equal(int64(1), moved)
	})

	s.Run("empty id list fails validation", func() {
		_, err := s.service.Archive(s.ctxFor(editor), nil, articlemodels.ArchiveReasonManual)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown reason is rejected", func() {
		_, err := s.service.Archive(s.ctxFor(editor),
			[]domain.ArticleID{hot.ID}, articlemodels.ArchiveReason("whim"))
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("writers may not run bulk operations", func() {
		writer := &domain.Actor{ID: domain.NewUserID(), Role: domain.RoleWriter}
		_, err := s.service.Archive(s.ctxFor(writer),
			[]domain.ArticleID{hot.ID}, articlemodels.ArchiveReasonManual)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func (s *LifecycleSuite) TestBulkRestore() {
	s.allowAuditing()
	editor := &domain.Actor{ID: domain.NewUserID(), Role: domain.RoleEditor}

	archived := s.publishedDaysAgo("bring-me-back", 300, articlemodels.StageArchive)

	restored, err := s.service.RestoreStage(s.ctxFor(editor), []domain.ArticleID{archived.ID})
	s.Require().NoError(err)
	s.Equal(int64(1), restored)

	got, err := s.articles.FindByID(context.Background(), archived.ID)
	s.Require().NoError(err)
	s.Equal(articlemodels.StageHot, got.Stage)
	s.Nil(got.ArchivedAt)
	s.Empty(got.ArchiveReason)
}

func (s *LifecycleSuite) TestStageCounts() {
	s.publishedDaysAgo("hot-one", 5, articlemodels.StageHot)
	s.publishedDaysAgo("hot-two", 10, articlemodels.StageHot)
	s.publishedDaysAgo("cold-one", 900, articlemodels.StageCold)

	s.Run("editors read the dashboard", func() {
		editor := &domain.Actor{ID: domain.NewUserID(), Role: domain.RoleEditor}
		counts, err := s.service.StageCounts(s.ctxFor(editor))
		s.Require().NoError(err)
		s.Equal(int64(2), counts.Hot)
		s.Equal(int64(1), counts.Cold)
	})

	s.Run("anonymous is rejected", func() {
		_, err := s.service.StageCounts(s.ctxFor(nil))
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *LifecycleSuite) TestSweepFailureSurfacesAsInternal() {
	configs := mocks.NewMockConfigStore(s.ctrl)
	svc := service.New(configs, s.articles)

	configs.EXPECT().Get(gomock.Any()).Return(nil, context.DeadlineExceeded)

	_, err := svc.RunHotToArchive(s.ctxFor(nil))
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
