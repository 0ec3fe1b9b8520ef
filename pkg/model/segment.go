package model

// Segment is one unit of a snippet body: literal text, a shared
// interactive node, or a shared mirror reference. It is a closed union;
// the three variants below are the only implementations.
type Segment interface {
	// String renders the segment. Text renders itself, Interactive
	// delegates to the held node, Mirror renders the mirrored value.
	String() string

	segment()
}

// Text is a literal run of characters owned by the segment itself.
type Text string

func (t Text) String() string { return string(t) }
func (Text) segment()         {}

// Interactive wraps a shared interactive node. The node's lifetime is
// that of its longest holder: a Tab, another Segment and the snippet body
// may all hold the same node, and a mutation through any holder is
// visible through the rest.
type Interactive struct {
	Node InteractiveSegment
}

func (i Interactive) String() string {
	if i.Node == nil {
		return ""
	}
	return i.Node.String()
}

func (Interactive) segment() {}

// Mirror wraps a shared Reference value so a field's content can be
// re-displayed elsewhere in the body without the mirror owning it.
type Mirror struct {
	Ref *Reference
}

func (m Mirror) String() string {
	if m.Ref == nil {
		return ""
	}
	return m.Ref.String()
}

func (Mirror) segment() {}

// Reference is a small value representing a mirror of another field:
// a label naming what is mirrored plus the text to show for it. Two
// references compare equal field by field.
type Reference struct {
	Label string
	Text  string
}

func (r Reference) String() string { return r.Text }

// Matches reports whether seg is a Mirror carrying a reference equal to
// r. No other segment variant compares equal to a Reference; comparing
// against Text or Interactive is always false. The model defines no
// general Segment-to-Segment equality.
func (r Reference) Matches(seg Segment) bool {
	mirror, ok := seg.(Mirror)
	if !ok || mirror.Ref == nil {
		return false
	}
	return *mirror.Ref == r
}
