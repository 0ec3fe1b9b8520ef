package model

import "strings"

// Tab is one navigable tab stop: an ordinal plus a shared handle to the
// field it stops at. Several tabs may share one field (mirrored tab
// stops); editing the field through any of them is visible through all.
type Tab struct {
	Num   int
	Field Field
}

// Snippet is the aggregate an external parser assembles bottom-up and a
// consumer then evaluates, trims and renders.
type Snippet struct {
	// Body holds the top-level segments in literal render order.
	Body []Segment

	// Tabs lists the navigable tab stops. Navigation order is Tab.Num,
	// independent of where the fields sit in Body.
	Tabs []Tab

	// ProgramFilledText collects the nodes awaiting an evaluation pass.
	// The model guarantees no ordering among them: when one computed
	// value must observe another's result, the consumer sequences the
	// Evaluate calls itself.
	ProgramFilledText []Programic

	// References collects the mirror values used by Body mirrors.
	References []*Reference
}

// String renders the snippet by concatenating every body segment in
// order.
func (s *Snippet) String() string {
	var b strings.Builder
	for _, seg := range s.Body {
		b.WriteString(seg.String())
	}
	return b.String()
}

// TrimEmptyTabs drops tab stops whose field renders to whitespace only,
// preserving the relative order of the survivors. Only navigability is
// affected: the field node itself stays wherever else it is held (a body
// segment, a mirror, another tab), so the rendered text never changes.
// Typical use is right after an evaluation pass, when a variable that
// resolved to nothing has left its enclosing placeholder empty.
// The operation is idempotent.
func (s *Snippet) TrimEmptyTabs() {
	kept := s.Tabs[:0]
	for _, tab := range s.Tabs {
		if tab.Field == nil {
			continue
		}
		if strings.TrimSpace(tab.Field.String()) == "" {
			continue
		}
		kept = append(kept, tab)
	}
	s.Tabs = kept
}
