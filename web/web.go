// Package web holds the page templates of the front end.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every page; each file is addressable by its base name.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(template.FuncMap{
		"display": display,
	}).ParseFS(templateFS, "templates/*.html")
}

// display maps a truthy value to a visible block, anything else to hidden.
func display(v any) template.CSS {
	visible := false
	switch t := v.(type) {
	case nil:
	case bool:
		visible = t
	case string:
		visible = t != ""
	default:
		visible = true
	}
	if visible {
		return "display: block"
	}
	return "display: none"
}
