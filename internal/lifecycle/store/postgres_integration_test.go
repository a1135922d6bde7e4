//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"newsdesk/internal/lifecycle/models"
	"newsdesk/internal/lifecycle/store"
	"newsdesk/pkg/domain"
	"newsdesk/pkg/testutil/containers"
)

type PostgresConfigSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresConfigSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresConfigSuite))
}

func (s *PostgresConfigSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.Pool)
}

func (s *PostgresConfigSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "lifecycle_config"))
}

func (s *PostgresConfigSuite) TestFirstReadCreatesDefaults() {
	cfg, err := s.store.Get(context.Background())
	s.Require().NoError(err)
	s.Equal(models.DefaultHotToArchiveDays, cfg.HotToArchiveDays)
	s.Equal(models.DefaultArchiveToColdDays, cfg.ArchiveToColdDays)
	s.True(cfg.EnableAutomation)
	s.Nil(cfg.LastHotToArchiveRun)
	s.Nil(cfg.LastArchiveToColdRun)
}

func (s *PostgresConfigSuite) TestSaveRoundTrip() {
	cfg, err := s.store.Get(context.Background())
	s.Require().NoError(err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	admin := domain.NewUserID()
	cfg.HotToArchiveDays = 45
	cfg.EnableAutomation = false
	cfg.UpdatedBy = &admin
	cfg.RecordRun(12, 3, now)
	s.Require().NoError(s.store.Save(context.Background(), cfg))

	got, err := s.store.Get(context.Background())
	s.Require().NoError(err)
	s.Equal(45, got.HotToArchiveDays)
	s.False(got.EnableAutomation)
	s.Equal(int64(12), got.LastRunArchived)
	s.Equal(int64(3), got.LastRunCooled)
	s.Require().NotNil(got.LastHotToArchiveRun)
	s.Equal(now, got.LastHotToArchiveRun.UTC())
	s.Require().NotNil(got.LastArchiveToColdRun)
	s.Equal(now, got.LastArchiveToColdRun.UTC())
	s.Require().NotNil(got.UpdatedBy)
	s.Equal(admin, *got.UpdatedBy)
}

func (s *PostgresConfigSuite) TestConcurrentFirstAccess() {
	done := make(chan error, 8)
	for range 8 {
		go func() {
			_, err := s.store.Get(context.Background())
			done <- err
		}()
	}
	for range 8 {
		s.Require().NoError(<-done)
	}
}
