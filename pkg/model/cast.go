package model

// The cast helpers recover a concrete node type from a capability value
// when a caller already knows, or has discovered, what it is holding.
// A mismatched target is signalled by ok == false and nothing else:
// casting never panics, so absence is always recoverable.

// CastInteractiveSegment re-types seg as the concrete type T when that is
// its dynamic type.
func CastInteractiveSegment[T InteractiveSegment](seg InteractiveSegment) (T, bool) {
	concrete, ok := seg.(T)
	return concrete, ok
}

// CastField re-types field as the concrete type T when that is its
// dynamic type.
func CastField[T Field](field Field) (T, bool) {
	concrete, ok := field.(T)
	return concrete, ok
}

// CastProgramic re-types node as the concrete type T when that is its
// dynamic type. The returned value shares the node, so mutating it (for
// example rewriting a Code command before re-evaluating) is visible to
// every other holder.
func CastProgramic[T Programic](node Programic) (T, bool) {
	concrete, ok := node.(T)
	return concrete, ok
}
