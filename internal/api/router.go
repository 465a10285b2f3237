package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixelforge/gamevault/internal/api/handler"
	"github.com/pixelforge/gamevault/internal/api/middleware"
	"github.com/pixelforge/gamevault/internal/artwork"
	"github.com/pixelforge/gamevault/internal/services/enemies"
	"github.com/pixelforge/gamevault/internal/services/players"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *players.Service
	EnemyService  *enemies.Service
	ArtworkStore  *artwork.Store
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService, cfg.ArtworkStore)
	enemyHandler := handler.NewEnemyHandler(cfg.EnemyService, cfg.ArtworkStore)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes. Fixed paths are registered before {id} so that
	// "deleted", "filter" and "search" are not parsed as identities.
	playersR := api.PathPrefix("/players").Subrouter()
	playersR.HandleFunc("", playerHandler.List).Methods(http.MethodGet)
	playersR.HandleFunc("", playerHandler.Create).Methods(http.MethodPost)
	playersR.HandleFunc("", playerHandler.DeleteAll).Methods(http.MethodDelete)
	playersR.HandleFunc("/deleted", playerHandler.Deleted).Methods(http.MethodGet)
	playersR.HandleFunc("/filter", playerHandler.Filter).Methods(http.MethodGet)
	playersR.HandleFunc("/search", playerHandler.Search).Methods(http.MethodGet)
	playersR.HandleFunc("/{id}", playerHandler.Get).Methods(http.MethodGet)
	playersR.HandleFunc("/{id}", playerHandler.Update).Methods(http.MethodPatch)
	playersR.HandleFunc("/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	playersR.HandleFunc("/{id}/revive", playerHandler.Revive).Methods(http.MethodPost)
	playersR.HandleFunc("/{id}/resurrect", playerHandler.Resurrect).Methods(http.MethodPost)
	playersR.HandleFunc("/{id}/image", playerHandler.UploadImage).Methods(http.MethodPost)

	// Enemy routes
	enemiesR := api.PathPrefix("/enemies").Subrouter()
	enemiesR.HandleFunc("", enemyHandler.List).Methods(http.MethodGet)
	enemiesR.HandleFunc("", enemyHandler.Create).Methods(http.MethodPost)
	enemiesR.HandleFunc("", enemyHandler.DeleteAll).Methods(http.MethodDelete)
	enemiesR.HandleFunc("/deleted", enemyHandler.Deleted).Methods(http.MethodGet)
	enemiesR.HandleFunc("/filter", enemyHandler.Filter).Methods(http.MethodGet)
	enemiesR.HandleFunc("/search", enemyHandler.Search).Methods(http.MethodGet)
	enemiesR.HandleFunc("/{id}", enemyHandler.Get).Methods(http.MethodGet)
	enemiesR.HandleFunc("/{id}", enemyHandler.Update).Methods(http.MethodPatch)
	enemiesR.HandleFunc("/{id}", enemyHandler.Delete).Methods(http.MethodDelete)
	enemiesR.HandleFunc("/{id}/revive", enemyHandler.Revive).Methods(http.MethodPost)
	enemiesR.HandleFunc("/{id}/image", enemyHandler.UploadImage).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
