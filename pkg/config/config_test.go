package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/config"
)

func TestParse_MergesOverDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
form:
  action: /api/contact
  simulated_delay: 50ms
theme:
  name: acme
  variant: dark
  tokens:
    status-error-color: "#ff0000"
  variants:
    dark:
      status-error-color: "#ff8888"
log:
  format: json
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Form.Action != "/api/contact" || cfg.Form.Method != "POST" {
		t.Fatalf("unexpected form section: %+v", cfg.Form)
	}
	delay, err := cfg.SimulatedDelay()
	if err != nil || delay != 50*time.Millisecond {
		t.Fatalf("unexpected delay %s (%v)", delay, err)
	}
	timeout, err := cfg.Timeout()
	if err != nil || timeout != 10*time.Second {
		t.Fatalf("unexpected timeout %s (%v)", timeout, err)
	}
	if cfg.Page.Title != "Contacto" {
		t.Fatalf("page defaults lost: %+v", cfg.Page)
	}

	manifest := cfg.Manifest()
	if manifest == nil || manifest.Name != "acme" {
		t.Fatalf("unexpected manifest: %+v", manifest)
	}
	if diff := cmp.Diff(map[string]string{"status-error-color": "#ff8888"}, manifest.Variants["dark"].Tokens); diff != "" {
		t.Fatalf("variant tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "form:\n  actoin: /x\n",
		"bad method":      "form:\n  method: TRACE\n",
		"bad duration":    "form:\n  simulated_delay: soon\n",
		"negative":        "form:\n  timeout: -1s\n",
		"partial openapi": "endpoint:\n  document: api.yaml\n",
		"log format":      "log:\n  format: xml\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := config.Parse([]byte(doc)); err == nil {
				t.Fatalf("expected error for %q", doc)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
	if cfg.Manifest() != nil {
		t.Fatalf("default config must not carry a theme manifest")
	}

	path := filepath.Join(t.TempDir(), "contactform.yaml")
	if err := os.WriteFile(path, []byte("form:\n  method: put\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err = config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Form.Method != "put" {
		t.Fatalf("unexpected method %q", cfg.Form.Method)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "config: read") {
		t.Fatalf("expected read error, got %v", err)
	}
}
