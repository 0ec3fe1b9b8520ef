// Package eval runs the evaluation pass over a snippet's program-filled
// nodes. The model itself guarantees no ordering among those nodes; this
// package is where a consumer imposes one when computed values depend on
// each other.
package eval

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-snippet/pkg/model"
)

// Option customises an Evaluator.
type Option func(*Evaluator)

// WithOrder imposes an explicit evaluation order by node identifier.
// Nodes named here run first, in the given order; the rest follow in
// their stored order. Use this when, say, a command references a
// variable's resolved text.
func WithOrder(identifiers ...string) Option {
	return func(e *Evaluator) {
		e.order = append(e.order, identifiers...)
	}
}

// WithResolver supplies a fallback resolver attached to any Variable
// that does not carry its own.
func WithResolver(resolver model.Resolver) Option {
	return func(e *Evaluator) {
		e.resolver = resolver
	}
}

// WithRunner supplies a fallback command runner attached to any Code
// node that does not carry its own.
func WithRunner(runner model.CommandRunner) Option {
	return func(e *Evaluator) {
		e.runner = runner
	}
}

// Evaluator drives Evaluate over every program-filled node of a snippet.
type Evaluator struct {
	order    []string
	resolver model.Resolver
	runner   model.CommandRunner
}

// New constructs an Evaluator applying any provided options.
func New(options ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Evaluate runs every node once and stops at the first failure, which is
// returned wrapped so callers can recover the underlying *CommandError.
// The failing node's previously cached value is left untouched by the
// model; nodes after it are not run.
func (e *Evaluator) Evaluate(ctx context.Context, snip *model.Snippet) error {
	if ctx == nil {
		return errors.New("eval: context is required")
	}
	if snip == nil {
		return errors.New("eval: snippet is required")
	}

	for _, node := range e.ordered(snip.ProgramFilledText) {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.attachFallbacks(node)
		if err := node.Evaluate(); err != nil {
			return fmt.Errorf("eval: node %q: %w", node.Identifier(), err)
		}
	}
	return nil
}

func (e *Evaluator) attachFallbacks(node model.Programic) {
	if e.resolver != nil {
		if variable, ok := model.CastProgramic[*model.Variable](node); ok && variable.Resolver == nil {
			variable.Resolver = e.resolver
		}
	}
	if e.runner != nil {
		if code, ok := model.CastProgramic[*model.Code](node); ok && code.Runner == nil {
			code.Runner = e.runner
		}
	}
}

func (e *Evaluator) ordered(nodes []model.Programic) []model.Programic {
	if len(e.order) == 0 || len(nodes) < 2 {
		return nodes
	}

	rank := make(map[string]int, len(e.order))
	for i, id := range e.order {
		if _, exists := rank[id]; !exists {
			rank[id] = i
		}
	}

	out := append([]model.Programic(nil), nodes...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iOrdered := rank[out[i].Identifier()]
		rj, jOrdered := rank[out[j].Identifier()]
		switch {
		case iOrdered && jOrdered:
			return ri < rj
		case iOrdered:
			return true
		default:
			return false
		}
	})
	return out
}
