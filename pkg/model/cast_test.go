package model_test

import (
	"testing"

	"github.com/goliatone/go-snippet/pkg/model"
)

func TestCastInteractiveSegment(t *testing.T) {
	var node model.InteractiveSegment = model.NewPlaceholder(
		model.Text("hello"),
		model.Text("there!"),
	)

	if _, ok := model.CastInteractiveSegment[*model.Choice](node); ok {
		t.Fatalf("placeholder must not cast to choice")
	}

	placeholder, ok := model.CastInteractiveSegment[*model.Placeholder](node)
	if !ok {
		t.Fatalf("placeholder failed to cast to its own type")
	}
	if len(placeholder.Segments) != 2 {
		t.Fatalf("expected 2 segments through the cast, got %d", len(placeholder.Segments))
	}
	if got := placeholder.Segments[1].String(); got != "there!" {
		t.Fatalf("expected second segment %q, got %q", "there!", got)
	}
}

func TestCastFieldThroughTab(t *testing.T) {
	tab := model.Tab{Num: 1, Field: model.NewPlaceholder(model.Text("hi"))}

	placeholder, ok := model.CastField[*model.Placeholder](tab.Field)
	if !ok {
		t.Fatalf("tab field failed to cast back to placeholder")
	}
	if got := placeholder.String(); got != "hi" {
		t.Fatalf("expected %q, got %q", "hi", got)
	}

	if _, ok := model.CastField[*model.Choice](tab.Field); ok {
		t.Fatalf("placeholder tab must not cast to choice")
	}
}

func TestCastProgramicSharesMutations(t *testing.T) {
	runs := []string{}
	snip := &model.Snippet{
		ProgramFilledText: []model.Programic{
			&model.Code{
				Command: "echo no",
				Runner: func(command string) (string, error) {
					runs = append(runs, command)
					return "ran: " + command, nil
				},
			},
		},
	}

	node := snip.ProgramFilledText[0]
	code, ok := model.CastProgramic[*model.Code](node)
	if !ok {
		t.Fatalf("expected code node")
	}

	code.Command = "echo yes"
	if err := code.Evaluate(); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if got := snip.ProgramFilledText[0].String(); got != "ran: echo yes" {
		t.Fatalf("mutation through cast not shared, render %q", got)
	}
	if len(runs) != 1 || runs[0] != "echo yes" {
		t.Fatalf("unexpected runner invocations: %v", runs)
	}

	if _, ok := model.CastProgramic[*model.Variable](node); ok {
		t.Fatalf("code node must not cast to variable")
	}
}
