package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsdesk/internal/lifecycle/models"
	"newsdesk/pkg/domain"
)

// Postgres persists the config singleton as the single row of
// lifecycle_config (id is fixed to 1 by a check constraint).
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Get returns the singleton, inserting the defaults first if the row does
// not exist yet. The insert-then-select shape makes first access safe under
// concurrent callers.
func (s *Postgres) Get(ctx context.Context) (*models.Config, error) {
	const ensure = `
		INSERT INTO lifecycle_config (id, hot_to_archive_days, archive_to_cold_days, enable_automation, updated_at)
		VALUES (1, $1, $2, TRUE, now())
		ON CONFLICT (id) DO NOTHING`
	if _, err := s.pool.Exec(ctx, ensure,
		models.DefaultHotToArchiveDays, models.DefaultArchiveToColdDays); err != nil {
		return nil, fmt.Errorf("ensure lifecycle config: %w", err)
	}

	const query = `
		SELECT hot_to_archive_days, archive_to_cold_days, enable_automation,
		       last_hot_to_archive_run, last_archive_to_cold_run,
		       last_run_archived, last_run_cooled,
		       updated_by, updated_at
		FROM lifecycle_config WHERE id = 1`

	var (
		cfg       models.Config
		updatedBy *uuid.UUID
	)
	err := s.pool.QueryRow(ctx, query).Scan(
		&cfg.HotToArchiveDays, &cfg.ArchiveToColdDays, &cfg.EnableAutomation,
		&cfg.LastHotToArchiveRun, &cfg.LastArchiveToColdRun,
		&cfg.LastRunArchived, &cfg.LastRunCooled,
		&updatedBy, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("load lifecycle config: %w", err)
	}
	if updatedBy != nil {
		id := domain.UserID(*updatedBy)
		cfg.UpdatedBy = &id
	}
	if err := cfg.ValidateRanges(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the singleton back.
func (s *Postgres) Save(ctx context.Context, cfg *models.Config) error {
	const query = `
		UPDATE lifecycle_config SET
			hot_to_archive_days = $1,
			archive_to_cold_days = $2,
			enable_automation = $3,
			last_hot_to_archive_run = $4,
			last_archive_to_cold_run = $5,
			last_run_archived = $6,
			last_run_cooled = $7,
			updated_by = $8,
			updated_at = $9
		WHERE id = 1`

	var updatedBy *uuid.UUID
	if cfg.UpdatedBy != nil {
		id := uuid.UUID(*cfg.UpdatedBy)
		updatedBy = &id
	}
	_, err := s.pool.Exec(ctx, query,
		cfg.HotToArchiveDays, cfg.ArchiveToColdDays, cfg.EnableAutomation,
		cfg.LastHotToArchiveRun, cfg.LastArchiveToColdRun,
		cfg.LastRunArchived, cfg.LastRunCooled,
		updatedBy, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save lifecycle config: %w", err)
	}
	return nil
}
