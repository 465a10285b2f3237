// Package factory wires storage, repositories and services into a
// running application.
package factory

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/pixelforge/gamevault/internal/artwork"
	"github.com/pixelforge/gamevault/internal/codec"
	"github.com/pixelforge/gamevault/internal/model"
	"github.com/pixelforge/gamevault/internal/repo"
	"github.com/pixelforge/gamevault/internal/services/enemies"
	"github.com/pixelforge/gamevault/internal/services/players"
	"github.com/pixelforge/gamevault/internal/store"
	"github.com/pixelforge/gamevault/internal/store/flatfile"
	"github.com/pixelforge/gamevault/internal/store/memory"
	"github.com/pixelforge/gamevault/internal/store/redisstore"
)

// Storage type constants
const (
	StorageTypeFlatfile = "flatfile"
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
)

// Resource names shared by every storage backend
const (
	ResourcePlayers        = "players"
	ResourceDeletedPlayers = "deleted_players"
	ResourceEnemies        = "enemies"
	ResourceDeletedEnemies = "deleted_enemies"
)

// App contains all wired application components
type App struct {
	PlayerService *players.Service
	EnemyService  *enemies.Service
	ArtworkStore  *artwork.Store
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("flatfile", "memory" or "redis")
	// If empty, defaults to "flatfile"
	StorageType string
	// DataDir is where flatfile resources live (required for flatfile)
	DataDir string
	// UploadsDir is where artwork blobs are written
	// If empty, artwork uploads are rejected at startup wiring time
	UploadsDir string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstore.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// stores is the per-resource row store set for one backend.
type stores struct {
	players        store.Store
	deletedPlayers store.Store
	enemies        store.Store
	deletedEnemies store.Store
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFlatfile
	}

	var st stores
	switch storageType {
	case StorageTypeFlatfile:
		if cfg.DataDir == "" {
			return nil, errors.New("DataDir required when StorageType is flatfile")
		}
		st = flatfileStores(cfg.DataDir)
	case StorageTypeMemory:
		st = memoryStores()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		client, err := redisstore.NewClient(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		st = stores{
			players:        redisstore.New(client, ResourcePlayers),
			deletedPlayers: redisstore.New(client, ResourceDeletedPlayers),
			enemies:        redisstore.New(client, ResourceEnemies),
			deletedEnemies: redisstore.New(client, ResourceDeletedEnemies),
		}
	default:
		return nil, errors.New("invalid StorageType: must be 'flatfile', 'memory' or 'redis'")
	}

	return newWithStores(st, cfg.UploadsDir, logger), nil
}

func flatfileStores(dataDir string) stores {
	playerFields := codec.Player().Fields()
	enemyFields := codec.Enemy().Fields()
	return stores{
		players:        flatfile.New(filepath.Join(dataDir, "players.csv"), playerFields),
		deletedPlayers: flatfile.New(filepath.Join(dataDir, "deleted_players.csv"), playerFields),
		enemies:        flatfile.New(filepath.Join(dataDir, "enemies.csv"), enemyFields),
		deletedEnemies: flatfile.New(filepath.Join(dataDir, "deleted_enemies.csv"), enemyFields),
	}
}

func memoryStores() stores {
	return stores{
		players:        memory.New(),
		deletedPlayers: memory.New(),
		enemies:        memory.New(),
		deletedEnemies: memory.New(),
	}
}

// newWithStores creates an App over the given row stores (useful for testing)
func newWithStores(st stores, uploadsDir string, logger *slog.Logger) *App {
	playerRepo := repo.New[model.Player, model.PlayerPatch](
		"player", st.players, st.deletedPlayers, codec.Player(), model.ErrPlayerNotFound, logger,
	)
	enemyRepo := repo.New[model.Enemy, model.EnemyPatch](
		"enemy", st.enemies, st.deletedEnemies, codec.Enemy(), model.ErrEnemyNotFound, logger,
	)

	return &App{
		PlayerService: players.New(playerRepo, logger),
		EnemyService:  enemies.New(enemyRepo, logger),
		ArtworkStore:  artwork.New(uploadsDir),
	}
}
