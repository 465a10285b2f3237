// Package enemies provides request-level operations over the enemy
// repository.
package enemies

import (
	"context"
	"log/slog"

	"github.com/pixelforge/gamevault/internal/model"
	"github.com/pixelforge/gamevault/internal/repo"
)

// Service is the facade the HTTP and CLI layers call for enemy
// operations.
type Service struct {
	repo   *repo.Repository[model.Enemy, model.EnemyPatch]
	logger *slog.Logger
}

// New creates a new enemy service.
func New(r *repo.Repository[model.Enemy, model.EnemyPatch], logger *slog.Logger) *Service {
	return &Service{
		repo:   r,
		logger: logger,
	}
}

// List returns all active enemies.
func (s *Service) List(ctx context.Context) ([]model.Enemy, error) {
	return s.repo.ListActive(ctx)
}

// Get returns the active enemy with the given identity.
func (s *Service) Get(ctx context.Context, id int) (model.Enemy, error) {
	return s.repo.GetActive(ctx, id)
}

// Create persists a new enemy and assigns its identity.
func (s *Service) Create(ctx context.Context, draft model.Enemy) (model.Enemy, error) {
	enemy, err := s.repo.Create(ctx, draft)
	if err != nil {
		return model.Enemy{}, err
	}

	s.logger.Info("enemy created",
		slog.Int("id", enemy.ID),
		slog.String("name", enemy.Name),
		slog.String("type", enemy.Type),
	)
	return enemy, nil
}

// Update applies a partial update to an active enemy.
func (s *Service) Update(ctx context.Context, id int, patch model.EnemyPatch) (model.Enemy, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete soft-deletes an enemy, returning the removed snapshot.
func (s *Service) Delete(ctx context.Context, id int) (model.Enemy, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return model.Enemy{}, err
	}

	s.logger.Info("enemy deleted", slog.Int("id", removed.ID))
	return removed, nil
}

// DeleteAll moves every active enemy to the deleted archive. It
// refuses to act without explicit confirmation.
func (s *Service) DeleteAll(ctx context.Context, confirm bool) ([]model.Enemy, error) {
	if !confirm {
		s.logger.Warn("delete all enemies rejected: confirmation missing")
		return nil, model.ErrConfirmationRequired
	}

	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("all enemies deleted", slog.Int("count", len(removed)))
	return removed, nil
}

// Deleted returns all soft-deleted enemies.
func (s *Service) Deleted(ctx context.Context) ([]model.Enemy, error) {
	return s.repo.ListDeleted(ctx)
}

// Revive moves a soft-deleted enemy back to the active collection.
func (s *Service) Revive(ctx context.Context, id int) (model.Enemy, error) {
	enemy, err := s.repo.Restore(ctx, id)
	if err != nil {
		return model.Enemy{}, err
	}

	s.logger.Info("enemy restored", slog.Int("id", enemy.ID))
	return enemy, nil
}

// FilterType returns active enemies of the given category. An empty
// category means no filtering.
func (s *Service) FilterType(ctx context.Context, enemyType string) ([]model.Enemy, error) {
	all, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if enemyType == "" {
		return all, nil
	}

	filtered := make([]model.Enemy, 0, len(all))
	for _, e := range all {
		if e.Type == enemyType {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// SearchMinHealth returns active enemies whose health is at least the
// threshold.
func (s *Service) SearchMinHealth(ctx context.Context, minHealth int) ([]model.Enemy, error) {
	all, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Enemy, 0, len(all))
	for _, e := range all {
		if e.Health >= minHealth {
			matched = append(matched, e)
		}
	}
	return matched, nil
}
