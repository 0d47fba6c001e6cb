package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/contact"
)

const openAPIDocument = `openapi: 3.0.3
info:
  title: Contact API
  version: "1.0"
servers:
  - url: https://api.example.com/v1
paths:
  /contact:
    post:
      operationId: createContact
      requestBody:
        content:
          application/json:
            schema:
              type: object
      responses:
        "204":
          description: accepted
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func renderSection(t *testing.T, dir, configPath string) string {
	t.Helper()
	out := filepath.Join(dir, "section.html")
	if _, err := run(t, "render", "--config", configPath, "--section", "--output", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func TestRenderWritesSectionToStdout(t *testing.T) {
	out, err := run(t, "render", "--section")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{`id="contacto"`, `id="nombre"`, `method="post"`, contact.LabelDefault} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSubmitSimulatesWithoutAction(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "contactform.yml", "form:\n  simulated_delay: 0s\nlog:\n  level: error\n")
	section := renderSection(t, dir, cfg)
	result := filepath.Join(dir, "result.html")

	out, err := run(t, "submit", "--config", cfg,
		"--input", section,
		"--output", result,
		"--nombre", "Ana",
		"--email", "ana@example.com",
		"--mensaje", "Quisiera más información",
	)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := "simulated\tsuccess\t" + contact.MsgSimulatedOK + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	written, err := os.ReadFile(result)
	if err != nil {
		t.Fatalf("read result: %v", err)
	}
	if !strings.Contains(string(written), contact.MsgSimulatedOK) {
		t.Fatalf("result page missing status:\n%s", written)
	}
}

func TestSubmitReportsValidationFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "contactform.yml", "log:\n  level: error\n")
	section := renderSection(t, dir, cfg)

	out, err := run(t, "submit", "--config", cfg, "--input", section, "--nombre", "A")
	if err == nil {
		t.Fatal("expected an error for an invalid submission")
	}
	want := "invalid\terror\t" + contact.MsgNameTooShort + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitPostsJSONToConfiguredAction(t *testing.T) {
	bodies := make(chan contact.Payload, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p contact.Payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		bodies <- p
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := writeFile(t, dir, "contactform.yml",
		"form:\n  action: "+srv.URL+"/contact\n  timeout: 5s\nlog:\n  level: error\n")
	section := renderSection(t, dir, cfg)

	out, err := run(t, "submit", "--config", cfg,
		"--input", section,
		"--nombre", "  Ana  ",
		"--email", "ana@example.com",
		"--mensaje", "Quisiera más información",
	)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.HasPrefix(out, "delivered\tsuccess\t") {
		t.Fatalf("unexpected output %q", out)
	}

	want := contact.Payload{Nombre: "Ana", Email: "ana@example.com", Mensaje: "Quisiera más información"}
	if diff := cmp.Diff(want, <-bodies); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestEndpointPrintsResolvedTarget(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "openapi.yaml", openAPIDocument)

	out, err := run(t, "endpoint", "--document", doc, "--operation", "createContact")
	if err != nil {
		t.Fatalf("endpoint: %v", err)
	}
	want := "createContact\tPOST\thttps://api.example.com/v1/contact\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderUsesEndpointFromConfig(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "openapi.yaml", openAPIDocument)
	cfg := writeFile(t, dir, "contactform.yml",
		"endpoint:\n  document: "+doc+"\n  operation: createContact\n")

	out, err := run(t, "render", "--config", cfg, "--section")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `action="https://api.example.com/v1/contact"`) {
		t.Fatalf("expected resolved action in output:\n%s", out)
	}
}

func TestRejectsUnknownLogFormat(t *testing.T) {
	if _, err := run(t, "render", "--log-format", "xml"); err == nil {
		t.Fatal("expected an error for an unknown log format")
	}
}
