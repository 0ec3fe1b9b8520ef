package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-snippet/pkg/eval"
	"github.com/goliatone/go-snippet/pkg/model"
	"github.com/goliatone/go-snippet/pkg/orchestrator"
	"github.com/goliatone/go-snippet/pkg/render"
)

func greetingBuilder(t *testing.T) orchestrator.Builder {
	t.Helper()
	return orchestrator.BuilderFunc(func(_ context.Context, name string) (*model.Snippet, error) {
		if name != "greeting" {
			return nil, errors.New("unknown snippet")
		}
		who := model.NewPlaceholder(model.Text("world"))
		author := &model.Variable{Name: "GREETING_AUTHOR"}
		return &model.Snippet{
			Body: []model.Segment{
				model.Text("hello "),
				model.Interactive{Node: who},
				model.Text(" - "),
				model.Interactive{Node: author},
			},
			Tabs:              []model.Tab{{Num: 1, Field: who}},
			ProgramFilledText: []model.Programic{author},
		}, nil
	})
}

func TestGenerateRunsFullPipeline(t *testing.T) {
	o := orchestrator.New(
		orchestrator.WithBuilder(greetingBuilder(t)),
		orchestrator.WithEvaluator(eval.New(
			eval.WithResolver(func(name string) string { return "ada" }),
		)),
	)

	out, err := o.Generate(context.Background(), orchestrator.Request{Name: "greeting"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := string(out); got != "hello world - ada" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestGenerateAppliesProfileBeforeEvaluation(t *testing.T) {
	fsys := fstest.MapFS{
		"casual.yaml": &fstest.MapFile{Data: []byte(
			"answers:\n  1: folks\nvariables:\n  GREETING_AUTHOR: grace\n",
		)},
	}

	o := orchestrator.New(
		orchestrator.WithBuilder(greetingBuilder(t)),
		orchestrator.WithProfileFS(fsys),
	)

	out, err := o.Generate(context.Background(), orchestrator.Request{
		Name:    "greeting",
		Profile: "casual",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := string(out); got != "hello folks - grace" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestGenerateUnknownProfileFails(t *testing.T) {
	o := orchestrator.New(orchestrator.WithBuilder(greetingBuilder(t)))

	_, err := o.Generate(context.Background(), orchestrator.Request{
		Name:    "greeting",
		Profile: "missing",
	})
	if err == nil || !strings.Contains(err.Error(), `profile "missing"`) {
		t.Fatalf("expected unknown profile error, got %v", err)
	}
}

func TestGenerateTrimsEmptyTabsAfterEvaluation(t *testing.T) {
	variable := &model.Variable{Name: "ORCH_TEST_UNSET_VARIABLE"}
	field := model.NewPlaceholder(model.Interactive{Node: variable})
	snip := &model.Snippet{
		Body:              []model.Segment{model.Interactive{Node: field}},
		Tabs:              []model.Tab{{Num: 1, Field: field}},
		ProgramFilledText: []model.Programic{variable},
	}

	o := orchestrator.New()
	if _, err := o.Generate(context.Background(), orchestrator.Request{Snippet: snip}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(snip.Tabs) != 0 {
		t.Fatalf("expected empty tab to be pruned, %d remain", len(snip.Tabs))
	}
	if len(snip.Body) != 1 {
		t.Fatalf("body must survive pruning")
	}
}

func TestGenerateKeepEmptyTabsOption(t *testing.T) {
	field := model.NewPlaceholder()
	snip := &model.Snippet{Tabs: []model.Tab{{Num: 1, Field: field}}}

	o := orchestrator.New(orchestrator.WithKeepEmptyTabs())
	if _, err := o.Generate(context.Background(), orchestrator.Request{Snippet: snip}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(snip.Tabs) != 1 {
		t.Fatalf("tabs must be kept when pruning is disabled")
	}
}

func TestGeneratePropagatesEvaluationFailure(t *testing.T) {
	snip := &model.Snippet{ProgramFilledText: []model.Programic{
		&model.Code{Command: "boom", Runner: func(string) (string, error) {
			return "", &model.CommandError{Command: "boom", ExitCode: 7}
		}},
	}}

	o := orchestrator.New()
	_, err := o.Generate(context.Background(), orchestrator.Request{Snippet: snip})
	if err == nil {
		t.Fatalf("expected evaluation failure")
	}

	var cmdErr *model.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.ExitCode != 7 {
		t.Fatalf("expected wrapped *CommandError, got %v", err)
	}
}

func TestGenerateUnknownRendererFails(t *testing.T) {
	o := orchestrator.New()
	_, err := o.Generate(context.Background(), orchestrator.Request{
		Snippet:  &model.Snippet{},
		Renderer: "nope",
	})
	if err == nil || !strings.Contains(err.Error(), `renderer "nope"`) {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestGenerateRequiresSnippetOrBuilder(t *testing.T) {
	o := orchestrator.New()
	if _, err := o.Generate(context.Background(), orchestrator.Request{Name: "x"}); err == nil {
		t.Fatalf("expected error without snippet or builder")
	}
}

func TestGenerateCustomRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(upperRenderer{})

	o := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("upper"),
	)

	out, err := o.Generate(context.Background(), orchestrator.Request{
		Snippet: &model.Snippet{Body: []model.Segment{model.Text("quiet")}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "QUIET" {
		t.Fatalf("custom renderer not used, got %q", out)
	}
}

type upperRenderer struct{}

func (upperRenderer) Name() string        { return "upper" }
func (upperRenderer) ContentType() string { return "text/plain" }
func (upperRenderer) Render(_ context.Context, snip *model.Snippet, _ render.RenderOptions) ([]byte, error) {
	return []byte(strings.ToUpper(snip.String())), nil
}
