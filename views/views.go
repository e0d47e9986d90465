// Package views holds the embedded HTML templates and browser assets.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
	"stars": func(n int) string {
		if n < 0 {
			n = 0
		}
		if n > 5 {
			n = 5
		}
		return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
	},
}

// Templates parses every page. Each file defines its template under its path
// relative to templates/, e.g. "user/index.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*/*.html")
}

// Assets is the static bundle served under /assets.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
