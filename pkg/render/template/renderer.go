// Package template declares the template-engine seam HTML renderers rely
// on, keeping the concrete engine swappable.
package template

// Renderer is the subset of a template engine the snippet renderers
// need: named templates loaded from a bundle plus ad-hoc strings.
type Renderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(templateContent string, data map[string]any) (string, error)
}
