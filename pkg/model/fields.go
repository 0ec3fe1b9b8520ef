package model

import "strings"

// Placeholder is text typed in by the user. It also covers what TextMate
// and VS Code call tabs and mirrors: the same *Placeholder can sit behind
// several Tab entries and body segments at once.
type Placeholder struct {
	// Segments is the placeholder content, in render order. It is a
	// segment list rather than a plain string because a placeholder can
	// contain anything a body can, including further placeholders.
	Segments []Segment
}

// NewPlaceholder builds a placeholder from the given child segments.
func NewPlaceholder(segments ...Segment) *Placeholder {
	return &Placeholder{Segments: segments}
}

// SetText replaces the placeholder content with a single literal segment.
// Used when a consumer commits a typed-in answer.
func (p *Placeholder) SetText(text string) {
	p.Segments = []Segment{Text(text)}
}

func (p *Placeholder) String() string {
	var b strings.Builder
	for _, seg := range p.Segments {
		b.WriteString(seg.String())
	}
	return b.String()
}

func (p *Placeholder) Type() Kind { return KindPlaceholder }

func (p *Placeholder) NestedSegments() ([]Segment, bool) {
	return p.Segments, true
}

func (*Placeholder) field() {}

// Choice is text selected by the user from a menu of several
// alternatives.
type Choice struct {
	// Selected indexes into Alternatives. An out-of-range index means
	// "nothing selected yet"; the choice renders empty, which lets a
	// parser construct an unresolved Choice before the consumer commits.
	Selected int

	// Alternatives holds one segment list per selectable option.
	Alternatives [][]Segment
}

// NewChoice builds a choice over the given alternatives with the
// selection index set. Pass a negative index for an unresolved choice.
func NewChoice(selected int, alternatives ...[]Segment) *Choice {
	return &Choice{Selected: selected, Alternatives: alternatives}
}

func (c *Choice) String() string {
	alt, ok := c.selected()
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, seg := range alt {
		b.WriteString(seg.String())
	}
	return b.String()
}

func (c *Choice) Type() Kind { return KindChoice }

func (c *Choice) NestedSegments() ([]Segment, bool) {
	return c.selected()
}

func (c *Choice) selected() ([]Segment, bool) {
	if c.Selected < 0 || c.Selected >= len(c.Alternatives) {
		return nil, false
	}
	return c.Alternatives[c.Selected], true
}

func (*Choice) field() {}
