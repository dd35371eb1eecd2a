// Package web embeds the HTML templates of the catalog form flow.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

// Layout is the template every page is rendered into.
const Layout = "layouts/main"

//go:embed templates
var templates embed.FS

// NewViews returns a fiber view engine over the embedded templates.
// Template names are their paths below templates/ without extension,
// e.g. "products/index".
func NewViews() (*html.Engine, error) {
	root, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}
	return html.NewFileSystem(http.FS(root), ".html"), nil
}
