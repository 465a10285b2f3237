// Package players provides request-level operations over the player
// repository.
package players

import (
	"context"
	"log/slog"

	"github.com/pixelforge/gamevault/internal/model"
	"github.com/pixelforge/gamevault/internal/repo"
)

// Service is the facade the HTTP and CLI layers call for player
// operations. It holds no state of its own beyond the repository.
type Service struct {
	repo   *repo.Repository[model.Player, model.PlayerPatch]
	logger *slog.Logger
}

// New creates a new player service.
func New(r *repo.Repository[model.Player, model.PlayerPatch], logger *slog.Logger) *Service {
	return &Service{
		repo:   r,
		logger: logger,
	}
}

// List returns all active players.
func (s *Service) List(ctx context.Context) ([]model.Player, error) {
	return s.repo.ListActive(ctx)
}

// Get returns the active player with the given identity.
func (s *Service) Get(ctx context.Context, id int) (model.Player, error) {
	return s.repo.GetActive(ctx, id)
}

// Create persists a new player and assigns its identity.
func (s *Service) Create(ctx context.Context, draft model.Player) (model.Player, error) {
	player, err := s.repo.Create(ctx, draft)
	if err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player created",
		slog.Int("id", player.ID),
		slog.String("name", player.Name),
	)
	return player, nil
}

// Update applies a partial update to an active player.
func (s *Service) Update(ctx context.Context, id int, patch model.PlayerPatch) (model.Player, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete soft-deletes a player, returning the removed snapshot.
func (s *Service) Delete(ctx context.Context, id int) (model.Player, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player deleted", slog.Int("id", removed.ID))
	return removed, nil
}

// DeleteAll moves every active player to the deleted archive. It
// refuses to act without explicit confirmation.
func (s *Service) DeleteAll(ctx context.Context, confirm bool) ([]model.Player, error) {
	if !confirm {
		s.logger.Warn("delete all players rejected: confirmation missing")
		return nil, model.ErrConfirmationRequired
	}

	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("all players deleted", slog.Int("count", len(removed)))
	return removed, nil
}

// Deleted returns all soft-deleted players.
func (s *Service) Deleted(ctx context.Context) ([]model.Player, error) {
	return s.repo.ListDeleted(ctx)
}

// Revive moves a soft-deleted player back to the active collection.
func (s *Service) Revive(ctx context.Context, id int) (model.Player, error) {
	player, err := s.repo.Restore(ctx, id)
	if err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player restored", slog.Int("id", player.ID))
	return player, nil
}

// ClearDeadFlag marks an active player as not dead. This is distinct
// from Revive, which restores a deleted record.
func (s *Service) ClearDeadFlag(ctx context.Context, id int) (model.Player, error) {
	alive := false
	return s.repo.Update(ctx, id, model.PlayerPatch{IsDead: &alive})
}

// FilterDead returns active players filtered by the is_dead flag.
// A nil flag means no filtering.
func (s *Service) FilterDead(ctx context.Context, isDead *bool) ([]model.Player, error) {
	players, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if isDead == nil {
		return players, nil
	}

	filtered := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.IsDead == *isDead {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// SearchMinHealth returns active players whose health is at least the
// threshold.
func (s *Service) SearchMinHealth(ctx context.Context, minHealth int) ([]model.Player, error) {
	players, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.Health >= minHealth {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
