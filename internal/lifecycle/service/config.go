package service

import (
	"context"

	"newsdesk/internal/audit"
	"newsdesk/internal/lifecycle/models"
	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/requestcontext"
)

func requireSuperadmin(ctx context.Context) (*domain.Actor, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !actor.IsSuperadmin() {
		return nil, dErrors.New(dErrors.CodeForbidden, "lifecycle configuration requires superadmin role")
	}
	return actor, nil
}

// GetConfig returns the singleton, creating it with defaults on first read.
func (s *Service) GetConfig(ctx context.Context) (*models.Config, error) {
	if _, err := requireSuperadmin(ctx); err != nil {
		return nil, err
	}
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load lifecycle config")
	}
	return cfg, nil
}

// UpdateConfig applies a partial update to the tunables.
func (s *Service) UpdateConfig(ctx context.Context, req models.UpdateConfigRequest) (*models.Config, error) {
	actor, err := requireSuperadmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid lifecycle config")
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load lifecycle config")
	}

	changed := req.Apply(cfg, actor.ID, requestcontext.Now(ctx))
	if len(changed) == 0 {
		return cfg, nil
	}
	if err := s.config.Save(ctx, cfg); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save lifecycle config")
	}

	s.record(ctx, audit.ActionLifecycleConfigSaved, map[string]any{"changed": changed})
	return cfg, nil
}
