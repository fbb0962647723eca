// Package web holds the HTML templates served by the flight pages.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded set. Pages are looked up by file name:
// index.html, error.html and success.html.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
