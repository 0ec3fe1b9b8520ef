// Package html renders a snippet into a standalone HTML preview page.
// Interactive nodes keep their kind as a CSS hook so a stylesheet or
// theme can highlight what is fillable versus program-filled.
package html

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-snippet/pkg/model"
	"github.com/goliatone/go-snippet/pkg/render"
	"github.com/goliatone/go-snippet/pkg/render/template"
	"github.com/goliatone/go-snippet/pkg/render/template/pongo"
)

// Option configures the HTML renderer.
type Option func(*config)

type config struct {
	templateFS fs.FS
	templates  template.Renderer
	policy     *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer template.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithSanitizerPolicy overrides the bluemonday policy applied to segment
// content before it is embedded in the page.
func WithSanitizerPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer implements render.Renderer for HTML previews.
type Renderer struct {
	templates template.Renderer
	policy    *bluemonday.Policy
}

// New constructs the HTML renderer. Defaults: embedded template bundle
// and a UGC sanitization policy, so markup produced by shell code stays
// limited to benign formatting.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.policy == nil {
		cfg.policy = bluemonday.UGCPolicy()
	}

	templates := cfg.templates
	if templates == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
		}
		templates = engine
	}

	return &Renderer{templates: templates, policy: cfg.policy}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, snip *model.Snippet, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snip == nil {
		return nil, errors.New("html: snippet is required")
	}

	segments := make([]map[string]any, 0, len(snip.Body))
	for _, seg := range snip.Body {
		segments = append(segments, map[string]any{
			"kind": render.SegmentKind(seg),
			"html": r.policy.Sanitize(seg.String()),
		})
	}

	tabs := make([]map[string]any, 0, len(snip.Tabs))
	for _, tab := range snip.Tabs {
		if tab.Field == nil {
			continue
		}
		tabs = append(tabs, map[string]any{
			"num":  tab.Num,
			"kind": string(tab.Field.Type()),
			"html": r.policy.Sanitize(tab.Field.String()),
		})
	}

	title := options.Title
	if title == "" {
		title = "Snippet preview"
	}

	themeCtx := buildThemeContext(options.Theme)

	out, err := r.templates.RenderTemplate("templates/snippet", map[string]any{
		"title":         title,
		"segments":      segments,
		"tabs":          tabs,
		"theme_name":    themeCtx.Name,
		"theme_variant": themeCtx.Variant,
		"theme_style":   themeCtx.CSSVarsStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(out), nil
}
