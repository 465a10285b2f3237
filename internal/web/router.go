package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixelforge/gamevault/internal/artwork"
	"github.com/pixelforge/gamevault/internal/services/enemies"
	"github.com/pixelforge/gamevault/internal/services/players"
	"github.com/pixelforge/gamevault/internal/web/handler"
	"github.com/pixelforge/gamevault/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *players.Service
	EnemyService  *enemies.Service
	ArtworkStore  *artwork.Store
	StaticDir     string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService, cfg.ArtworkStore)
	enemyHandler := handler.NewEnemyHandler(cfg.EnemyService)

	// Static files, including uploaded artwork
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	pages := r.NewRoute().Subrouter()
	pages.Use(flashMiddleware)

	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/about", homeHandler.About).Methods(http.MethodGet)

	// Player pages. Fixed paths are registered before {id} so that
	// "new" and "deleted" are not parsed as identities.
	pages.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	pages.HandleFunc("/players/new", playerHandler.NewForm).Methods(http.MethodGet)
	pages.HandleFunc("/players/new", playerHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/players/deleted", playerHandler.Deleted).Methods(http.MethodGet)
	pages.HandleFunc("/players/deleted/{id}/restore", playerHandler.Restore).Methods(http.MethodPost)
	pages.HandleFunc("/players/{id}", playerHandler.Detail).Methods(http.MethodGet)
	pages.HandleFunc("/players/{id}/delete", playerHandler.Delete).Methods(http.MethodPost)

	// Enemy pages
	pages.HandleFunc("/enemies", enemyHandler.List).Methods(http.MethodGet)
	pages.HandleFunc("/enemies/new", enemyHandler.NewForm).Methods(http.MethodGet)
	pages.HandleFunc("/enemies/new", enemyHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/enemies/deleted", enemyHandler.Deleted).Methods(http.MethodGet)
	pages.HandleFunc("/enemies/deleted/{id}/restore", enemyHandler.Restore).Methods(http.MethodPost)
	pages.HandleFunc("/enemies/{id}/delete", enemyHandler.Delete).Methods(http.MethodPost)

	return r
}
