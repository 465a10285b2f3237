package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pixelforge/gamevault/internal/api/request"
	"github.com/pixelforge/gamevault/internal/api/response"
	"github.com/pixelforge/gamevault/internal/artwork"
	"github.com/pixelforge/gamevault/internal/services/enemies"
)

// EnemyHandler handles enemy-related endpoints
type EnemyHandler struct {
	enemies *enemies.Service
	artwork *artwork.Store
}

// NewEnemyHandler creates a new enemy handler
func NewEnemyHandler(enemyService *enemies.Service, artworkStore *artwork.Store) *EnemyHandler {
	return &EnemyHandler{
		enemies: enemyService,
		artwork: artworkStore,
	}
}

// List handles GET /api/v1/enemies
func (h *EnemyHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.enemies.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EnemiesFromModel(list))
}

// Get handles GET /api/v1/enemies/{id}
func (h *EnemyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	enemy, err := h.enemies.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EnemyFromModel(enemy))
}

// Create handles POST /api/v1/enemies
func (h *EnemyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEnemyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	enemy, err := h.enemies.Create(r.Context(), req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.EnemyFromModel(enemy))
}

// Update handles PATCH /api/v1/enemies/{id}
func (h *EnemyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var patch request.UpdateEnemyRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	enemy, err := h.enemies.Update(r.Context(), id, patch)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EnemyFromModel(enemy))
}

// Delete handles DELETE /api/v1/enemies/{id}
func (h *EnemyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	removed, err := h.enemies.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EnemyFromModel(removed))
}

// DeleteAll handles DELETE /api/v1/enemies?confirm=true
func (h *EnemyHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	confirm := r.URL.Query().Get("confirm") == "true"

	removed, err := h.enemies.DeleteAll(r.Context(), confirm)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EnemiesFromModel(removed))
}

// Deleted handles GET /api/v1/enemies/deleted
func (h *EnemyHandler) Deleted(w http.ResponseWriter, r *http.Request) {
	list, err := h.enemies.Deleted(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EnemiesFromModel(list))
}

// Revive handles POST /api/v1/enemies/{id}/revive
func (h *EnemyHandler) Revive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	enemy, err := h.enemies.Revive(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EnemyFromModel(enemy))
}

// Filter handles GET /api/v1/enemies/filter?type=
func (h *EnemyHandler) Filter(w http.ResponseWriter, r *http.Request) {
	list, err := h.enemies.FilterType(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EnemiesFromModel(list))
}

// Search handles GET /api/v1/enemies/search?min_health=
func (h *EnemyHandler) Search(w http.ResponseWriter, r *http.Request) {
	minHealth := 0
	if raw := r.URL.Query().Get("min_health"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("min_health must be an integer"))
			return
		}
		minHealth = v
	}

	list, err := h.enemies.SearchMinHealth(r.Context(), minHealth)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EnemiesFromModel(list))
}

// UploadImage handles POST /api/v1/enemies/{id}/image
func (h *EnemyHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if _, err := h.enemies.Get(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxArtworkUpload); err != nil {
		WriteError(w, NewInvalidRequestError("invalid multipart body"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, NewInvalidRequestError("image file is required"))
		return
	}
	defer func() { _ = file.Close() }()

	ref, err := h.artwork.Save("enemy", id, header.Filename, file)
	if err != nil {
		WriteError(w, err)
		return
	}

	enemy, err := h.enemies.Update(r.Context(), id, request.UpdateEnemyRequest{Image: &ref})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.EnemyFromModel(enemy))
}
