package render

import "github.com/goliatone/go-snippet/pkg/model"

// SegmentKind names a body segment for styling hooks: "text", "mirror"
// or the interactive node's kind tag.
func SegmentKind(seg model.Segment) string {
	switch s := seg.(type) {
	case model.Interactive:
		if s.Node == nil {
			return "text"
		}
		return string(s.Node.Type())
	case model.Mirror:
		return "mirror"
	default:
		return "text"
	}
}
