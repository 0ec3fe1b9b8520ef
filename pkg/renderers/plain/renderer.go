// Package plain renders a snippet to its literal text: every top-level
// body segment concatenated in order. It is the default renderer.
package plain

import (
	"context"
	"errors"

	"github.com/goliatone/go-snippet/pkg/model"
	"github.com/goliatone/go-snippet/pkg/render"
)

// Renderer implements render.Renderer for plain text output.
type Renderer struct{}

// New constructs the plain renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "plain"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, snip *model.Snippet, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("plain: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snip == nil {
		return nil, errors.New("plain: snippet is required")
	}
	return []byte(snip.String()), nil
}
