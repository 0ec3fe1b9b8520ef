// Package tui fills a snippet interactively: it walks the tab stops in
// order, prompts for each one, writes the answers into the shared field
// nodes and returns the final rendered text. Because the fields are
// shared, every answer is immediately visible through the snippet body
// and any mirrors of the field.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-snippet/pkg/model"
	"github.com/goliatone/go-snippet/pkg/render"
)

// Option customises the TUI renderer.
type Option func(*Renderer)

// WithDriver injects a PromptDriver, replacing the default survey-backed
// implementation. Used by tests and embedders with their own terminal
// handling.
func WithDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithTrim makes the renderer prune empty tab stops before prompting, so
// fields that evaluation already emptied do not produce pointless
// prompts.
func WithTrim() Option {
	return func(r *Renderer) {
		r.trim = true
	}
}

// Renderer implements render.Renderer for terminal fill sessions.
type Renderer struct {
	driver PromptDriver
	trim   bool
}

// New constructs a TUI renderer with the survey driver as default.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render prompts for every tab stop in navigation order and returns the
// snippet text with the answers applied.
func (r *Renderer) Render(ctx context.Context, snip *model.Snippet, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snip == nil {
		return nil, errors.New("tui: snippet is required")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	if r.trim {
		snip.TrimEmptyTabs()
	}

	for _, tab := range snip.Tabs {
		if err := r.promptTab(ctx, tab, options); err != nil {
			return nil, err
		}
	}

	return []byte(snip.String()), nil
}

func (r *Renderer) promptTab(ctx context.Context, tab model.Tab, options render.RenderOptions) error {
	if placeholder, ok := model.CastField[*model.Placeholder](tab.Field); ok {
		return r.promptPlaceholder(ctx, tab.Num, placeholder, options)
	}
	if choice, ok := model.CastField[*model.Choice](tab.Field); ok {
		return r.promptChoice(ctx, tab.Num, choice, options)
	}
	// Unknown field kinds are skipped rather than failing the session.
	return nil
}

func (r *Renderer) promptPlaceholder(ctx context.Context, num int, placeholder *model.Placeholder, options render.RenderOptions) error {
	defaultValue := placeholder.String()
	if seeded, ok := options.Answers[num]; ok {
		defaultValue = seeded
	}

	answer, err := r.driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("Tab %d", num),
		Default: defaultValue,
	})
	if err != nil {
		return fmt.Errorf("tui: prompt tab %d: %w", num, err)
	}

	placeholder.SetText(answer)
	return nil
}

func (r *Renderer) promptChoice(ctx context.Context, num int, choice *model.Choice, options render.RenderOptions) error {
	labels := make([]string, 0, len(choice.Alternatives))
	for _, alt := range choice.Alternatives {
		labels = append(labels, renderAlternative(alt))
	}

	defaultIndex := choice.Selected
	if seeded, ok := options.Answers[num]; ok {
		if i := indexOf(labels, seeded); i >= 0 {
			defaultIndex = i
		}
	}

	selected, err := r.driver.Select(ctx, SelectConfig{
		Message:      fmt.Sprintf("Tab %d", num),
		Options:      labels,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return fmt.Errorf("tui: prompt tab %d: %w", num, err)
	}

	if selected >= 0 && selected < len(choice.Alternatives) {
		choice.Selected = selected
	}
	return nil
}

func renderAlternative(segments []model.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.String())
	}
	return b.String()
}
