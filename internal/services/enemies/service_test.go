package enemies_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/gamevault/internal/codec"
	"github.com/pixelforge/gamevault/internal/model"
	"github.com/pixelforge/gamevault/internal/repo"
	"github.com/pixelforge/gamevault/internal/services/enemies"
	"github.com/pixelforge/gamevault/internal/store/memory"
	"github.com/pixelforge/gamevault/internal/testutil"
)

func newService(t *testing.T) *enemies.Service {
	t.Helper()

	r := repo.New[model.Enemy, model.EnemyPatch](
		"enemy", memory.New(), memory.New(), codec.Enemy(), model.ErrEnemyNotFound, testutil.NopLogger(),
	)
	return enemies.New(r, testutil.NopLogger())
}

func draft(name, enemyType string, health int) model.Enemy {
	return model.Enemy{
		Name:             name,
		Speed:            1,
		Jump:             1,
		HitSpeed:         1,
		Health:           health,
		Type:             enemyType,
		Spawn:            10,
		ProbabilitySpawn: 0.5,
	}
}

func TestCreateValidatesSpawnProbability(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	bad := draft("Goblin", "goblin", 30)
	bad.ProbabilitySpawn = 1.5

	_, err := svc.Create(ctx, bad)
	require.Error(t, err)

	var validation *model.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "probability_spawn", validation.Field)
}

func TestFilterType(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, draft("Goblin", "goblin", 30))
	require.NoError(t, err)
	_, err = svc.Create(ctx, draft("Hobgoblin", "goblin", 60))
	require.NoError(t, err)
	_, err = svc.Create(ctx, draft("Wraith", "undead", 45))
	require.NoError(t, err)

	matched, err := svc.FilterType(ctx, "goblin")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	// Empty type means no filtering.
	matched, err = svc.FilterType(ctx, "")
	require.NoError(t, err)
	assert.Len(t, matched, 3)

	matched, err = svc.FilterType(ctx, "dragon")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestSearchMinHealth(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, draft("Goblin", "goblin", 30))
	require.NoError(t, err)
	_, err = svc.Create(ctx, draft("Wraith", "undead", 45))
	require.NoError(t, err)

	matched, err := svc.SearchMinHealth(ctx, 40)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Wraith", matched[0].Name)
}

func TestDeleteAllRequiresConfirmation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, draft("Goblin", "goblin", 30))
	require.NoError(t, err)

	_, err = svc.DeleteAll(ctx, false)
	assert.ErrorIs(t, err, model.ErrConfirmationRequired)

	removed, err := svc.DeleteAll(ctx, true)
	require.NoError(t, err)
	assert.Len(t, removed, 1)
}

func TestReviveRestoresDeletedEnemy(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	goblin, err := svc.Create(ctx, draft("Goblin", "goblin", 30))
	require.NoError(t, err)

	_, err = svc.Delete(ctx, goblin.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, goblin.ID)
	assert.ErrorIs(t, err, model.ErrEnemyNotFound)

	revived, err := svc.Revive(ctx, goblin.ID)
	require.NoError(t, err)
	assert.Equal(t, goblin, revived)
}
