package page_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/dom"
	"github.com/goliatone/go-contactform/pkg/page"
)

func TestRenderer_RenderProducesWorkingForm(t *testing.T) {
	renderer, err := page.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var buf bytes.Buffer
	err = renderer.Render(&buf, page.Page{
		Title:  "Escríbenos",
		Intro:  `<p>Hola <a href="https://example.com">equipo</a></p><script>alert(1)</script>`,
		Action: " /api/contact ",
		Theme: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens:  map[string]string{"brand": "#123456"},
		},
		ExecScript: "/wasm_exec.js",
		WasmScript: "/contactform.wasm",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>Escríbenos</title>",
		"--brand: #123456;",
		`<form action="/api/contact" method="post" novalidate>`,
		`<a href="https://example.com" rel="nofollow">equipo</a>`,
		`<script src="/wasm_exec.js"></script>`,
		`fetch("/contactform.wasm")`,
		`<button type="submit">Enviar</button>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "alert(1)") {
		t.Fatalf("intro scripts must be stripped:\n%s", out)
	}

	doc, err := dom.Parse(&buf)
	if err != nil {
		t.Fatalf("parse rendered page: %v", err)
	}
	ctrl := contact.New(doc)
	if err := ctrl.Init(); err != nil {
		t.Fatalf("rendered page must expose the form: %v", err)
	}
	if out := ctrl.HandleSubmit(context.Background()); out.Status != contact.StatusInvalid {
		t.Fatalf("empty rendered form must be invalid, got %+v", out)
	}
}

func TestRenderer_SectionOmitsBootstrap(t *testing.T) {
	renderer, err := page.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	var buf bytes.Buffer
	if err := renderer.RenderSection(&buf, page.Page{Method: "PUT", Action: "#"}); err != nil {
		t.Fatalf("render section: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, `<section id="contacto">`) {
		t.Fatalf("unexpected section output:\n%s", out)
	}
	if !strings.Contains(out, `method="put"`) || strings.Contains(out, "<script") {
		t.Fatalf("unexpected section output:\n%s", out)
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"page.tpl":    {Data: []byte(`[{{ title }}]{{ section|safe }}`)},
		"contact.tpl": {Data: []byte(`<form action="{{ action }}"></form>`)},
	}
	renderer, err := page.New(page.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page.Page{Action: "/x"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, want := buf.String(), `[Contacto]<form action="/x"></form>`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
