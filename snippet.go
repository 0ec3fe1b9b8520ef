// Package snippet re-exports the pieces most embedders need: the core
// model types, the pipeline orchestrator and the embedded preview
// templates. Deeper customisation lives in the pkg subpackages.
package snippet

import (
	"io/fs"

	"github.com/goliatone/go-snippet/pkg/model"
	"github.com/goliatone/go-snippet/pkg/orchestrator"
	"github.com/goliatone/go-snippet/pkg/renderers/html"
)

// Core model types.
type (
	Snippet     = model.Snippet
	Segment     = model.Segment
	Text        = model.Text
	Interactive = model.Interactive
	Mirror      = model.Mirror
	Reference   = model.Reference
	Tab         = model.Tab
	Placeholder = model.Placeholder
	Choice      = model.Choice
	Variable    = model.Variable
	Code        = model.Code
)

// Pipeline entry points.
type (
	Orchestrator = orchestrator.Orchestrator
	Request      = orchestrator.Request
	Builder      = orchestrator.Builder
	BuilderFunc  = orchestrator.BuilderFunc
)

// New constructs a pipeline orchestrator. See pkg/orchestrator for the
// available options.
func New(options ...orchestrator.Option) *Orchestrator {
	return orchestrator.New(options...)
}

// EmbeddedTemplates exposes the built-in HTML preview templates so
// callers can reuse or extend them without importing the renderer
// package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
