package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplatesFS exposes the built-in preview templates so callers can
// extend or replace individual files without rebuilding the renderer.
func TemplatesFS() fs.FS {
	return templatesFS
}
