// Package orchestrator coordinates the full snippet pipeline: an
// external builder (the parser collaborator) assembles the snippet, a
// fill profile applies pre-commit decisions, the evaluation pass fills
// program-filled nodes, empty tab stops are pruned, and a registered
// renderer produces the output.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-snippet/pkg/eval"
	"github.com/goliatone/go-snippet/pkg/model"
	"github.com/goliatone/go-snippet/pkg/profile"
	"github.com/goliatone/go-snippet/pkg/render"
	"github.com/goliatone/go-snippet/pkg/renderers/plain"
)

const defaultRendererName = "plain"

// Builder is the parser collaborator: it assembles a snippet bottom-up
// from whatever source syntax it understands. The orchestrator never
// parses snippet bodies itself.
type Builder interface {
	Build(ctx context.Context, name string) (*model.Snippet, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(ctx context.Context, name string) (*model.Snippet, error)

func (f BuilderFunc) Build(ctx context.Context, name string) (*model.Snippet, error) {
	return f(ctx, name)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithBuilder injects the snippet builder.
func WithBuilder(builder Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits
// an explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithEvaluator injects a configured evaluation pass, e.g. one carrying
// an explicit node order or fallback resolvers.
func WithEvaluator(evaluator *eval.Evaluator) Option {
	return func(o *Orchestrator) {
		o.evaluator = evaluator
	}
}

// WithProfiles injects an already-loaded profile store.
func WithProfiles(store *profile.Store) Option {
	return func(o *Orchestrator) {
		o.profiles = store
		o.profilesSpecified = true
	}
}

// WithProfileFS supplies an fs.FS holding YAML fill profiles.
func WithProfileFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.profileFS = fsys
		o.profilesSpecified = true
	}
}

// WithKeepEmptyTabs disables the post-evaluation pruning of tab stops
// whose fields rendered empty.
func WithKeepEmptyTabs() Option {
	return func(o *Orchestrator) {
		o.keepEmptyTabs = true
	}
}

// Orchestrator coordinates builder, profiles, evaluation and rendering.
// Missing pieces are initialised with built-in defaults (plain renderer,
// plain evaluation pass) so a single constructor call is enough.
type Orchestrator struct {
	builder           Builder
	registry          *render.Registry
	defaultRenderer   string
	evaluator         *eval.Evaluator
	profiles          *profile.Store
	profileFS         fs.FS
	profilesSpecified bool
	keepEmptyTabs     bool
	initialiseErr     error
	defaultsApplied   bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one snippet session.
type Request struct {
	// Snippet supplies an already-assembled snippet, bypassing the
	// builder.
	Snippet *model.Snippet

	// Name identifies the snippet for the builder and doubles as the
	// default render title.
	Name string

	// Profile names a fill profile to apply before evaluation. Empty
	// means none.
	Profile string

	// Renderer names the output surface. Empty falls back to the
	// configured default.
	Renderer string

	// RenderOptions is passed through to the renderer.
	RenderOptions render.RenderOptions
}

// Generate runs the pipeline (build, profile, evaluate, trim, render)
// and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	snip, err := o.resolveSnippet(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.Profile != "" {
		p, ok := o.profiles.Profile(req.Profile)
		if !ok {
			return nil, fmt.Errorf("orchestrator: profile %q not found", req.Profile)
		}
		p.Apply(snip)
	}

	if err := o.evaluator.Evaluate(ctx, snip); err != nil {
		return nil, fmt.Errorf("orchestrator: evaluation pass: %w", err)
	}

	if !o.keepEmptyTabs {
		snip.TrimEmptyTabs()
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Title == "" {
		options.Title = req.Name
	}

	output, err := renderer.Render(ctx, snip, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) resolveSnippet(ctx context.Context, req Request) (*model.Snippet, error) {
	if req.Snippet != nil {
		return req.Snippet, nil
	}
	if o.builder == nil {
		return nil, errors.New("orchestrator: snippet or builder is required")
	}
	snip, err := o.builder.Build(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build snippet: %w", err)
	}
	if snip == nil {
		return nil, fmt.Errorf("orchestrator: builder returned no snippet for %q", req.Name)
	}
	return snip, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
		names := o.registry.List()
		if len(names) == 0 {
			return nil, errors.New("orchestrator: no renderers registered")
		}
		return o.registry.Get(names[0])
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(plain.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.evaluator == nil {
		o.evaluator = eval.New()
	}

	o.ensureProfiles()

	o.defaultsApplied = true
}

func (o *Orchestrator) ensureProfiles() {
	if o.profiles != nil {
		return
	}
	if !o.profilesSpecified || o.profileFS == nil {
		o.profiles = &profile.Store{}
		return
	}

	store, err := profile.LoadFS(o.profileFS)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: load profiles: %w", err)
		return
	}
	o.profiles = store
}
