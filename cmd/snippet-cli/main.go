package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-snippet/pkg/model"
	"github.com/goliatone/go-snippet/pkg/orchestrator"
	"github.com/goliatone/go-snippet/pkg/render"
	"github.com/goliatone/go-snippet/pkg/renderers/gom"
	"github.com/goliatone/go-snippet/pkg/renderers/html"
	"github.com/goliatone/go-snippet/pkg/renderers/plain"
	"github.com/goliatone/go-snippet/pkg/renderers/tui"
)

func main() {
	renderer := flag.String("renderer", "plain", "renderer to use (plain, html, gom, tui)")
	profileDir := flag.String("profiles", "", "directory holding YAML fill profiles")
	profileName := flag.String("profile", "", "fill profile to apply")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	registry := render.NewRegistry()
	registry.MustRegister(plain.New())
	registry.MustRegister(gom.New())
	registry.MustRegister(tui.New())

	htmlRenderer, err := html.New()
	if err != nil {
		log.Fatalf("Failed to configure html renderer: %v", err)
	}
	registry.MustRegister(htmlRenderer)

	options := []orchestrator.Option{
		orchestrator.WithBuilder(orchestrator.BuilderFunc(buildDemo)),
		orchestrator.WithRegistry(registry),
	}
	if *profileDir != "" {
		options = append(options, orchestrator.WithProfileFS(os.DirFS(*profileDir)))
	}

	gen := orchestrator.New(options...)

	out, err := gen.Generate(ctx, orchestrator.Request{
		Name:     "demo",
		Profile:  *profileName,
		Renderer: *renderer,
	})
	if err != nil {
		log.Fatalf("Failed to generate snippet: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Snippet written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

// buildDemo stands in for a real parser: it assembles the demo snippet
// the way a TextMate-style body like
// `Dear ${1:colleague}, greetings from $USER (${2|home,work|}) - $(date +%Y)`
// would be parsed.
func buildDemo(context.Context, string) (*model.Snippet, error) {
	recipient := model.NewPlaceholder(model.Text("colleague"))
	location := model.NewChoice(0,
		[]model.Segment{model.Text("home")},
		[]model.Segment{model.Text("work")},
	)
	user := &model.Variable{Name: "USER"}
	year := &model.Code{Command: "date +%Y"}

	return &model.Snippet{
		Body: []model.Segment{
			model.Text("Dear "),
			model.Interactive{Node: recipient},
			model.Text(", greetings from "),
			model.Interactive{Node: user},
			model.Text(" ("),
			model.Interactive{Node: location},
			model.Text(") - "),
			model.Interactive{Node: year},
		},
		Tabs: []model.Tab{
			{Num: 1, Field: recipient},
			{Num: 2, Field: location},
		},
		ProgramFilledText: []model.Programic{user, year},
	}, nil
}
