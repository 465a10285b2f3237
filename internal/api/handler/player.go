package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pixelforge/gamevault/internal/api/request"
	"github.com/pixelforge/gamevault/internal/api/response"
	"github.com/pixelforge/gamevault/internal/artwork"
	"github.com/pixelforge/gamevault/internal/services/players"
)

// maxArtworkUpload bounds multipart artwork uploads (8 MiB).
const maxArtworkUpload = 8 << 20

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	players *players.Service
	artwork *artwork.Store
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *players.Service, artworkStore *artwork.Store) *PlayerHandler {
	return &PlayerHandler{
		players: playerService,
		artwork: artworkStore,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.players.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(list))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.players.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.players.Create(r.Context(), req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Update handles PATCH /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var patch request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.players.Update(r.Context(), id, patch)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	removed, err := h.players.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(removed))
}

// DeleteAll handles DELETE /api/v1/players?confirm=true
func (h *PlayerHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	confirm := r.URL.Query().Get("confirm") == "true"

	removed, err := h.players.DeleteAll(r.Context(), confirm)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(removed))
}

// Deleted handles GET /api/v1/players/deleted
func (h *PlayerHandler) Deleted(w http.ResponseWriter, r *http.Request) {
	list, err := h.players.Deleted(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(list))
}

// Revive handles POST /api/v1/players/{id}/revive
func (h *PlayerHandler) Revive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.players.Revive(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Resurrect handles POST /api/v1/players/{id}/resurrect
// It clears the is_dead flag on an active player. This is not Revive:
// the record never left the active collection.
func (h *PlayerHandler) Resurrect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.players.ClearDeadFlag(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Filter handles GET /api/v1/players/filter?is_dead=
func (h *PlayerHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var isDead *bool
	if raw := r.URL.Query().Get("is_dead"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("is_dead must be a boolean"))
			return
		}
		isDead = &v
	}

	list, err := h.players.FilterDead(r.Context(), isDead)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(list))
}

// Search handles GET /api/v1/players/search?min_health=
func (h *PlayerHandler) Search(w http.ResponseWriter, r *http.Request) {
	minHealth := 0
	if raw := r.URL.Query().Get("min_health"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("min_health must be an integer"))
			return
		}
		minHealth = v
	}

	list, err := h.players.SearchMinHealth(r.Context(), minHealth)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(list))
}

// UploadImage handles POST /api/v1/players/{id}/image
func (h *PlayerHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	// The record must exist before any blob is written.
	if _, err := h.players.Get(r.Context(), id); err != nil {
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

	ref, err := h.artwork.Save("player", id, header.Filename, file)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.players.Update(r.Context(), id, request.UpdatePlayerRequest{Image: &ref})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// pathID extracts the integer identity from the route
func pathID(r *http.Request) (int, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewInvalidRequestError("id must be an integer")
	}
	return id, nil
}
