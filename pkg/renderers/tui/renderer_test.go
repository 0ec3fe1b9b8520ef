package tui

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-snippet/pkg/model"
	"github.com/goliatone/go-snippet/pkg/render"
)

type fakeDriver struct {
	inputs   []string
	selects  []int
	prompts  []string
	inputIdx int
	selIdx   int
}

func (f *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	f.prompts = append(f.prompts, cfg.Message)
	if f.inputIdx >= len(f.inputs) {
		return cfg.Default, nil
	}
	out := f.inputs[f.inputIdx]
	f.inputIdx++
	return out, nil
}

func (f *fakeDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	f.prompts = append(f.prompts, cfg.Message)
	if f.selIdx >= len(f.selects) {
		return cfg.DefaultIndex, nil
	}
	out := f.selects[f.selIdx]
	f.selIdx++
	return out, nil
}

func TestRenderFillsTabsInOrder(t *testing.T) {
	name := model.NewPlaceholder(model.Text("anonymous"))
	mood := model.NewChoice(-1,
		[]model.Segment{model.Text("happy")},
		[]model.Segment{model.Text("grumpy")},
	)
	snip := &model.Snippet{
		Body: []model.Segment{
			model.Text("hello "),
			model.Interactive{Node: name},
			model.Text(", feeling "),
			model.Interactive{Node: mood},
		},
		Tabs: []model.Tab{
			{Num: 1, Field: name},
			{Num: 2, Field: mood},
		},
	}

	driver := &fakeDriver{inputs: []string{"ada"}, selects: []int{1}}
	renderer := New(WithDriver(driver))

	out, err := renderer.Render(context.Background(), snip, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := string(out); got != "hello ada, feeling grumpy" {
		t.Fatalf("expected filled text, got %q", got)
	}
	if diff := cmp.Diff([]string{"Tab 1", "Tab 2"}, driver.prompts); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}

	// The answers landed in the shared nodes, not in renderer state.
	if got := name.String(); got != "ada" {
		t.Fatalf("placeholder missed answer, got %q", got)
	}
	if mood.Selected != 1 {
		t.Fatalf("choice missed selection, got %d", mood.Selected)
	}
}

func TestRenderSeedsDefaultsFromAnswers(t *testing.T) {
	name := model.NewPlaceholder()
	snip := &model.Snippet{
		Body: []model.Segment{model.Interactive{Node: name}},
		Tabs: []model.Tab{{Num: 1, Field: name}},
	}

	// Driver echoes the default back, as a user hitting enter would.
	driver := &fakeDriver{}
	renderer := New(WithDriver(driver))

	out, err := renderer.Render(context.Background(), snip, render.RenderOptions{
		Answers: map[int]string{1: "seeded"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != "seeded" {
		t.Fatalf("expected seeded answer, got %q", got)
	}
}

func TestRenderWithTrimSkipsEmptyTabs(t *testing.T) {
	empty := model.NewPlaceholder(model.Text("  "))
	kept := model.NewPlaceholder(model.Text("x"))
	snip := &model.Snippet{
		Body: []model.Segment{
			model.Interactive{Node: empty},
			model.Interactive{Node: kept},
		},
		Tabs: []model.Tab{
			{Num: 1, Field: empty},
			{Num: 2, Field: kept},
		},
	}

	driver := &fakeDriver{inputs: []string{"filled"}}
	renderer := New(WithDriver(driver), WithTrim())

	if _, err := renderer.Render(context.Background(), snip, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if diff := cmp.Diff([]string{"Tab 2"}, driver.prompts); diff != "" {
		t.Fatalf("expected only the surviving tab to prompt (-want +got):\n%s", diff)
	}
}

func TestChoiceSelectionUsesRenderedAlternatives(t *testing.T) {
	choice := model.NewChoice(-1,
		[]model.Segment{model.Text("for "), model.Interactive{Node: model.NewPlaceholder(model.Text("i"))}},
		[]model.Segment{model.Text("while")},
	)
	snip := &model.Snippet{
		Body: []model.Segment{model.Interactive{Node: choice}},
		Tabs: []model.Tab{{Num: 1, Field: choice}},
	}

	var seen []string
	driver := &promptRecorder{onSelect: func(cfg SelectConfig) int {
		seen = cfg.Options
		return 0
	}}

	if _, err := New(WithDriver(driver)).Render(context.Background(), snip, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"for i", "while"}, seen); diff != "" {
		t.Fatalf("alternative labels mismatch (-want +got):\n%s", diff)
	}
	if choice.Selected != 0 {
		t.Fatalf("expected selection 0, got %d", choice.Selected)
	}
}

type promptRecorder struct {
	onSelect func(SelectConfig) int
}

func (p *promptRecorder) Input(_ context.Context, cfg InputConfig) (string, error) {
	return cfg.Default, nil
}

func (p *promptRecorder) Select(_ context.Context, cfg SelectConfig) (int, error) {
	return p.onSelect(cfg), nil
}
