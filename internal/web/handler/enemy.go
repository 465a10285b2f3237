package handler

import (
	"net/http"

	"github.com/pixelforge/gamevault/internal/model"
	"github.com/pixelforge/gamevault/internal/services/enemies"
	"github.com/pixelforge/gamevault/internal/web/middleware"
	"github.com/pixelforge/gamevault/internal/web/templates"
)

// EnemyHandler handles enemy pages and form actions
type EnemyHandler struct {
	enemies *enemies.Service
}

// NewEnemyHandler creates a new EnemyHandler
func NewEnemyHandler(enemyService *enemies.Service) *EnemyHandler {
	return &EnemyHandler{
		enemies: enemyService,
	}
}

// EnemiesListData is the view model for the enemy list page
type EnemiesListData struct {
	templates.PageData
	Enemies []model.Enemy
}

// List renders the enemy bestiary page
func (h *EnemyHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.enemies.List(r.Context())
	if err != nil {
		middleware.SetFlash(w, "error", "Could not load enemies")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := EnemiesListData{
		PageData: templates.PageData{
			Title: "Enemies",
			Flash: middleware.GetFlash(r.Context()),
		},
		Enemies: list,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "enemies_list.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NewForm renders the enemy creation form
func (h *EnemyHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := templates.PageData{
		Title: "New Enemy",
		Flash: middleware.GetFlash(r.Context()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "enemy_form.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Create handles the enemy creation form submission
func (h *EnemyHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/enemies/new", http.StatusSeeOther)
		return
	}

	draft, err := enemyFromForm(r)
	if err != nil {
		middleware.SetFlash(w, "error", err.Error())
		http.Redirect(w, r, "/enemies/new", http.StatusSeeOther)
		return
	}

	if _, err := h.enemies.Create(r.Context(), draft); err != nil {
		middleware.SetFlash(w, "error", "Could not create enemy: "+err.Error())
		http.Redirect(w, r, "/enemies/new", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Enemy created!")
	http.Redirect(w, r, "/enemies", http.StatusSeeOther)
}

// Delete handles the soft-delete form action
func (h *EnemyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.SetFlash(w, "error", "Invalid enemy id")
		http.Redirect(w, r, "/enemies", http.StatusSeeOther)
		return
	}

	if _, err := h.enemies.Delete(r.Context(), id); err != nil {
		middleware.SetFlash(w, "error", "Could not delete enemy: "+err.Error())
		http.Redirect(w, r, "/enemies", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "info", "Enemy moved to deletion history")
	http.Redirect(w, r, "/enemies", http.StatusSeeOther)
}

// Deleted renders the deletion history page
func (h *EnemyHandler) Deleted(w http.ResponseWriter, r *http.Request) {
	list, err := h.enemies.Deleted(r.Context())
	if err != nil {
		middleware.SetFlash(w, "error", "Could not load deletion history")
		http.Redirect(w, r, "/enemies", http.StatusSeeOther)
		return
	}

	data := EnemiesListData{
		PageData: templates.PageData{
			Title: "Deleted Enemies",
			Flash: middleware.GetFlash(r.Context()),
		},
		Enemies: list,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "enemies_deleted.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Restore handles the restore form action from the deletion history page
func (h *EnemyHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		middleware.SetFlash(w, "error", "Invalid enemy id")
		http.Redirect(w, r, "/enemies/deleted", http.StatusSeeOther)
		return
	}

	if _, err := h.enemies.Revive(r.Context(), id); err != nil {
		middleware.SetFlash(w, "error", "Could not restore enemy: "+err.Error())
		http.Redirect(w, r, "/enemies/deleted", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Enemy restored!")
	http.Redirect(w, r, "/enemies", http.StatusSeeOther)
}

func enemyFromForm(r *http.Request) (model.Enemy, error) {
	var e model.Enemy
	var err error

	e.Name = r.FormValue("name")
	e.Type = r.FormValue("type")
	if e.Speed, err = formFloat(r, "speed"); err != nil {
		return model.Enemy{}, err
	}
	if e.Jump, err = formFloat(r, "jump"); err != nil {
		return model.Enemy{}, err
	}
	if e.HitSpeed, err = formInt(r, "hit_speed"); err != nil {
		return model.Enemy{}, err
	}
	if e.Health, err = formInt(r, "health"); err != nil {
		return model.Enemy{}, err
	}
	if e.Spawn, err = formFloat(r, "spawn"); err != nil {
		return model.Enemy{}, err
	}
	if e.ProbabilitySpawn, err = formFloat(r, "probability_spawn"); err != nil {
		return model.Enemy{}, err
	}
	return e, nil
}
