package model

import "fmt"

// Kind identifies the concrete variety of an interactive node.
type Kind string

const (
	KindPlaceholder Kind = "placeholder"
	KindChoice      Kind = "choice"
	KindVariable    Kind = "variable"
	KindCode        Kind = "code"
)

// InteractiveSegment is the capability every interactive node exposes:
// a stable kind tag, a rendered form, and (for container kinds) the child
// segments nested beneath it. Generic walkers branch on Type or recurse
// through NestedSegments instead of switching over concrete types.
type InteractiveSegment interface {
	fmt.Stringer

	// Type reports the node's kind tag. Constant per concrete type.
	Type() Kind

	// NestedSegments returns the node's child segments when it has any.
	// Placeholder always reports children; Choice reports the selected
	// alternative's children only while the selection index is in range;
	// leaf kinds report none.
	NestedSegments() ([]Segment, bool)
}

// Field marks an interactive node that may be bound to a tab stop.
// Only Placeholder and Choice qualify; program-filled kinds are never
// directly navigable.
type Field interface {
	InteractiveSegment

	field()
}

// Programic marks a node whose displayed value is produced by an explicit
// evaluation step rather than by structural composition. Nothing refreshes
// these implicitly: a Programic node's rendered value is stale until its
// owner calls Evaluate.
type Programic interface {
	InteractiveSegment

	// Identifier returns a key that is stable across evaluations, usable
	// as a cache key or an override target. For Variable this is the
	// variable name; for Code it is the command text, which makes two
	// distinct nodes running the same command collide. Callers needing
	// per-node identity must track the nodes themselves.
	Identifier() string

	// Evaluate recomputes the node's cached displayed value in place.
	// On failure the previous cached value is left untouched and the
	// error is returned to the caller.
	Evaluate() error
}
