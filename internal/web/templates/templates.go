// Package templates holds the embedded server-rendered pages.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed *.html
var files embed.FS

// FlashMessage is a one-shot notification rendered on the next page load
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData carries the fields every page needs
type PageData struct {
	Title string
	Flash *FlashMessage
}

var pages = map[string]*template.Template{
	"home.html":            parse("home.html"),
	"about.html":           parse("about.html"),
	"players_list.html":    parse("players_list.html"),
	"player_form.html":     parse("player_form.html"),
	"player_detail.html":   parse("player_detail.html"),
	"players_deleted.html": parse("players_deleted.html"),
	"enemies_list.html":    parse("enemies_list.html"),
	"enemy_form.html":      parse("enemy_form.html"),
	"enemies_deleted.html": parse("enemies_deleted.html"),
}

func parse(page string) *template.Template {
	return template.Must(template.ParseFS(files, "base.html", page))
}

// Render writes the named page to w using the base layout
func Render(w io.Writer, page string, data any) error {
	tmpl, ok := pages[page]
	if !ok {
		return fmt.Errorf("unknown page template: %s", page)
	}
	return tmpl.ExecuteTemplate(w, "base.html", data)
}
