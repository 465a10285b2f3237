package handler

import (
	"net/http"
	"strconv"

	"github.com/pixelforge/gamevault/internal/artwork"
	"github.com/pixelforge/gamevault/internal/model"
	"github.com/pixelforge/gamevault/internal/services/players"
	"github.com/pixelforge/gamevault/internal/web/middleware"
	"github.com/pixelforge/gamevault/internal/web/templates"
)

// maxArtworkUpload bounds multipart artwork uploads (8 MiB).
const maxArtworkUpload = 8 << 20

// PlayerHandler handles player pages and form actions
type PlayerHandler struct {
	players *players.Service
	artwork *artwork.Store
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(playerService *players.Service, artworkStore *artwork.Store) *PlayerHandler {
	return &PlayerHandler{
		players: playerService,
		artwork: artworkStore,
	}
}

// PlayersListData is the view model for the player list page
type PlayersListData struct {
	templates.PageData
	Players []model.Player
}

// PlayerDetailData is the view model for the player detail page
type PlayerDetailData struct {
	templates.PageData
	Player model.Player
}

// List renders the player roster page
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.players.List(r.Context())
	if err != nil {
		middleware.SetFlash(w, "error", "Could not load players")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := PlayersListData{
		PageData: templates.PageData{
			Title: "Players",
			Flash: middleware.GetFlash(r.Context()),
		},
		Players: list,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "players_list.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NewForm renders the player creation form
func (h *PlayerHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := templates.PageData{
		Title: "New Player",
		Flash: middleware.GetFlash(r.Context()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "player_form.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Create handles the player creation form submission. The form is
// multipart because it may carry an artwork file.
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxArtworkUpload); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/players/new", http.StatusSeeOther)
		return
	}

	draft, err := playerFromForm(r)
	if err != nil {
		middleware.SetFlash(w, "error", err.Error())
		http.Redirect(w, r, "/players/new", http.StatusSeeOther)
		return
	}

	player, err := h.players.Create(r.Context(), draft)
	if err != nil {
		middleware.SetFlash(w, "error", "Could not create player: "+err.Error())
		http.Redirect(w, r, "/players/new", http.StatusSeeOther)
		return
	}

	// Artwork is optional; the record exists either way.
	if file, header, err := r.FormFile("image"); err == nil {
		defer func() { _ = file.Close() }()
		if ref, err := h.artwork.Save("player", player.ID, header.Filename, file); err == nil {
			if updated, err := h.players.Update(r.Context(), player.ID, model.PlayerPatch{Image: &ref}); err == nil {
				player = updated
			}
		} else {
			middleware.SetFlash(w, "error", "Player created, but artwork was rejected")
			http.Redirect(w, r, "/players/"+strconv.Itoa(player.ID), http.StatusSeeOther)
			return
		}
	}

	middleware.SetFlash(w, "success", "Player created!")
	http.Redirect(w, r, "/players/"+strconv.Itoa(player.ID), http.StatusSeeOther)
}

// Detail renders a single player's page
func (h *PlayerHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.SetFlash(w, "error", "Invalid player id")
		http.Redirect(w, r, "/players", http.StatusSeeOther)
		return
	}

	player, err := h.players.Get(r.Context(), id)
	if err != nil {
		middleware.SetFlash(w, "error", "Player not found")
		http.Redirect(w, r, "/players", http.StatusSeeOther)
		return
	}

	data := PlayerDetailData{
		PageData: templates.PageData{
			Title: player.Name,
			Flash: middleware.GetFlash(r.Context()),
		},
		Player: player,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "player_detail.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Delete handles the soft-delete form action
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.SetFlash(w, "error", "Invalid player id")
		http.Redirect(w, r, "/players", http.StatusSeeOther)
		return
	}

	if _, err := h.players.Delete(r.Context(), id); err != nil {
		middleware.SetFlash(w, "error", "Could not delete player: "+err.Error())
		http.Redirect(w, r, "/players", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "info", "Player moved to deletion history")
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

// Deleted renders the deletion history page
func (h *PlayerHandler) Deleted(w http.ResponseWriter, r *http.Request) {
	list, err := h.players.Deleted(r.Context())
	if err != nil {
		middleware.SetFlash(w, "error", "Could not load deletion history")
		http.Redirect(w, r, "/players", http.StatusSeeOther)
		return
	}

	data := PlayersListData{
		PageData: templates.PageData{
			Title: "Deleted Players",
			Flash: middleware.GetFlash(r.Context()),
		},
		Players: list,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "players_deleted.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Restore handles the restore form action from the deletion history page
func (h *PlayerHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.SetFlash(w, "error", "Invalid player id")
		http.Redirect(w, r, "/players/deleted", http.StatusSeeOther)
		return
	}

	if _, err := h.players.Revive(r.Context(), id); err != nil {
		middleware.SetFlash(w, "error", "Could not restore player: "+err.Error())
		http.Redirect(w, r, "/players/deleted", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Player restored!")
	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

func playerFromForm(r *http.Request) (model.Player, error) {
	var p model.Player
	var err error

	p.Name = r.FormValue("name")
	if p.Health, err = formInt(r, "health"); err != nil {
		return model.Player{}, err
	}
	if p.RegenerateHealth, err = formInt(r, "regenerate_health"); err != nil {
		return model.Player{}, err
	}
	if p.Speed, err = formFloat(r, "speed"); err != nil {
		return model.Player{}, err
	}
	if p.Jump, err = formFloat(r, "jump"); err != nil {
		return model.Player{}, err
	}
	if p.Armor, err = formInt(r, "armor"); err != nil {
		return model.Player{}, err
	}
	if p.HitSpeed, err = formInt(r, "hit_speed"); err != nil {
		return model.Player{}, err
	}
	return p, nil
}
