package handler

import (
	"net/http"

	"github.com/pixelforge/gamevault/internal/web/middleware"
	"github.com/pixelforge/gamevault/internal/web/templates"
)

// HomeHandler handles the home and about pages
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := templates.PageData{
		Title: "Home",
		Flash: middleware.GetFlash(r.Context()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "home.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// About renders the project info page
func (h *HomeHandler) About(w http.ResponseWriter, r *http.Request) {
	data := templates.PageData{
		Title: "About",
		Flash: middleware.GetFlash(r.Context()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "about.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
