package http

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"os"
)

//go:embed all:assets
var content embed.FS

// openAssets serves templates and static files from dir when set, so they
// can be edited without a rebuild, and from the embedded copy otherwise.
func openAssets(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(content, "assets")
}

func parseTemplates(assets fs.FS) (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"selected": func(a, b string) bool { return a == b },
	}).ParseFS(assets, "templates/*.html")
}

func staticFS(assets fs.FS) (http.FileSystem, error) {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
