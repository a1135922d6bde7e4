package homepage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsdesk/pkg/domain"
)

// PostgresStore persists the slot singleton as the single row of
// homepage_config (id fixed to 1 by a check constraint).
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Get returns the singleton, inserting an empty row first if absent.
func (s *PostgresStore) Get(ctx context.Context) (*Config, error) {
	const ensure = `
		INSERT INTO homepage_config (id, updated_at) VALUES (1, now())
		ON CONFLICT (id) DO NOTHING`
	if _, err := s.pool.Exec(ctx, ensure); err != nil {
		return nil, fmt.Errorf("ensure homepage config: %w", err)
	}

	const query = `SELECT hero, sub_featured, updated_by, updated_at FROM homepage_config WHERE id = 1`

	var (
		cfg         Config
		hero        *uuid.UUID
		subFeatured []uuid.UUID
		updatedBy   *uuid.UUID
	)
	err := s.pool.QueryRow(ctx, query).Scan(&hero, &subFeatured, &updatedBy, &cfg.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("load homepage config: %w", err)
	}

	if hero != nil {
		id := domain.ArticleID(*hero)
		cfg.Hero = &id
	}
	cfg.SubFeatured = make([]domain.ArticleID, len(subFeatured))
	for i, id := range subFeatured {
		cfg.SubFeatured[i] = domain.ArticleID(id)
	}
	if updatedBy != nil {
		id := domain.UserID(*updatedBy)
		cfg.UpdatedBy = &id
	}
	return &cfg, nil
}

// Save writes the singleton back.
func (s *PostgresStore) Save(ctx context.Context, cfg *Config) error {
	const query = `
		UPDATE homepage_config SET hero = $1, sub_featured = $2, updated_by = $3, updated_at = $4
		WHERE id = 1`

	var hero *uuid.UUID
	if cfg.Hero != nil {
		id := uuid.UUID(*cfg.Hero)
		hero = &id
	}
	subFeatured := make([]uuid.UUID, len(cfg.SubFeatured))
	for i, id := range cfg.SubFeatured {
		subFeatured[i] = uuid.UUID(id)
	}
	var updatedBy *uuid.UUID
	if cfg.UpdatedBy != nil {
		id := uuid.UUID(*cfg.UpdatedBy)
		updatedBy = &id
	}

	if _, err := s.pool.Exec(ctx, query, hero, subFeatured, updatedBy, cfg.UpdatedAt); err != nil {
		return fmt.Errorf("save homepage config: %w", err)
	}
	return nil
}
