package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/lifecycle/models"
	"newsdesk/internal/lifecycle/store"
)

func TestGetCreatesDefaultsOnFirstRead(t *testing.T) {
	s := store.NewInMemory()

	cfg, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultHotToArchiveDays, cfg.HotToArchiveDays)
	assert.Equal(t, models.DefaultArchiveToColdDays, cfg.ArchiveToColdDays)
	assert.True(t, cfg.EnableAutomation)
}

func TestSaveRoundTrip(t *testing.T) {
	s := store.NewInMemory()

	cfg, err := s.Get(context.Background())
	require.NoError(t, err)

	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	cfg.HotToArchiveDays = 45
	cfg.RecordRun(7, -1, now)
	require.NoError(t, s.Save(context.Background(), cfg))

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 45, got.HotToArchiveDays)
	assert.Equal(t, int64(7), got.LastRunArchived)
	require.NotNil(t, got.LastHotToArchiveRun)
	assert.Equal(t, now, *got.LastHotToArchiveRun)
	assert.Nil(t, got.LastArchiveToColdRun)
}

func TestGetReturnsDetachedCopies(t *testing.T) {
	s := store.NewInMemory()

	first, err := s.Get(context.Background())
	require.NoError(t, err)
	first.HotToArchiveDays = 1

	second, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultHotToArchiveDays, second.HotToArchiveDays)
}
