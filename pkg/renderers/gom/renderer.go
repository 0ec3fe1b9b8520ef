// Package gom renders a snippet preview by composing gomponents nodes
// instead of executing a template bundle. Segment content goes through
// gomponents' text nodes, so it arrives escaped rather than sanitized.
package gom

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-snippet/pkg/model"
	"github.com/goliatone/go-snippet/pkg/render"
)

// Renderer implements render.Renderer on top of gomponents.
type Renderer struct{}

// New constructs the gomponents renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "gom"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, snip *model.Snippet, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("gom: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snip == nil {
		return nil, errors.New("gom: snippet is required")
	}

	title := options.Title
	if title == "" {
		title = "Snippet preview"
	}

	bodyClass := "snippet-preview"
	if options.Theme != nil {
		if options.Theme.Theme != "" {
			bodyClass += " theme-" + options.Theme.Theme
		}
		if options.Theme.Variant != "" {
			bodyClass += " theme-" + options.Theme.Variant
		}
	}

	spans := make([]g.Node, 0, len(snip.Body))
	for _, seg := range snip.Body {
		spans = append(spans, h.Span(
			h.Class("snippet-segment snippet-"+render.SegmentKind(seg)),
			g.Text(seg.String()),
		))
	}

	items := make([]g.Node, 0, len(snip.Tabs))
	for _, tab := range snip.Tabs {
		if tab.Field == nil {
			continue
		}
		items = append(items, h.Li(
			h.Value(fmt.Sprintf("%d", tab.Num)),
			h.Class("snippet-tab snippet-"+string(tab.Field.Type())),
			g.Text(tab.Field.String()),
		))
	}

	bodyChildren := []g.Node{
		h.Class(bodyClass),
		h.H1(h.Class("snippet-title"), g.Text(title)),
		h.Pre(append([]g.Node{h.Class("snippet-body")}, spans...)...),
	}
	if len(items) > 0 {
		bodyChildren = append(bodyChildren, h.Ol(append([]g.Node{h.Class("snippet-tabs")}, items...)...))
	}

	page := h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text(title)),
			),
			h.Body(bodyChildren...),
		),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("gom renderer: render page: %w", err)
	}
	return buf.Bytes(), nil
}
