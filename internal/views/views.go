// Package views holds the HTML pages served to browsers.
package views

import (
	"embed"
	"html/template"

	"itemdesk/internal/flash"
	"itemdesk/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page template names.
const (
	LoginPage     = "login.html"
	RegisterPage  = "register.html"
	DashboardPage = "dashboard.html"
	NewItemPage   = "new.html"
	EditItemPage  = "edit.html"
	SearchPage    = "search.html"
	ErrorPage     = "error.html"
)

// Page is the data every template renders from. Fields a page does not use
// stay zero.
type Page struct {
	Title    string
	Flash    *flash.Notice
	Username string

	Items []models.Item
	Item  models.Item

	Query   string
	Matched int
	Total   int

	Error string
}

// Templates parses the embedded page set. It panics on a malformed template,
// which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}
