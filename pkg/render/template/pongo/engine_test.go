package pongo_test

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-snippet/pkg/render/template/pongo"
)

func TestRenderString(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("hello {{ name }}", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "hello ada" {
		t.Fatalf("expected %q, got %q", "hello ada", out)
	}
}

func TestRenderTemplateAppendsExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("hi {{ who }}")},
	}
	engine, err := pongo.New(pongo.WithFS(fsys))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"who": "there"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "hi there" {
		t.Fatalf("expected %q, got %q", "hi there", out)
	}
}

func TestRenderTemplateUsesGlobals(t *testing.T) {
	fsys := fstest.MapFS{
		"page.tmpl": &fstest.MapFile{Data: []byte("{{ brand }}: {{ body }}")},
	}
	engine, err := pongo.New(
		pongo.WithFS(fsys),
		pongo.WithGlobals(map[string]any{"brand": "acme"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("page.tmpl", map[string]any{"body": "ok"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "acme: ok" {
		t.Fatalf("expected %q, got %q", "acme: ok", out)
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error when no template source is configured")
	}
}
