// Package render defines the seam between the snippet model and the
// different output surfaces: the Renderer contract, per-request options
// and a registry renderers are looked up from.
package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-snippet/pkg/model"
)

// Renderer converts an assembled snippet into a byte representation
// (plain text, HTML preview, an interactive fill session, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, snip *model.Snippet, options RenderOptions) ([]byte, error)
}

// RenderOptions carries per-request data renderers can use without the
// snippet pipeline mutating anything on their behalf.
type RenderOptions struct {
	// Title labels the output where the surface has room for one, e.g.
	// the HTML preview heading.
	Title string

	// Theme configures visual treatment for HTML-producing renderers.
	// Nil means unthemed output.
	Theme *theme.RendererConfig

	// Answers pre-seeds interactive renderers with default responses
	// keyed by tab number. Non-interactive renderers ignore it.
	Answers map[int]string
}
