// Package config loads the YAML configuration shared by the contactform
// binaries.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// Config is the root document.
type Config struct {
	Form     Form     `yaml:"form"`
	Endpoint Endpoint `yaml:"endpoint"`
	Page     Page     `yaml:"page"`
	Theme    Theme    `yaml:"theme"`
	Log      Log      `yaml:"log"`
}

// Form configures the controller and its sender.
type Form struct {
	Action         string `yaml:"action"`
	Method         string `yaml:"method"`
	BaseURL        string `yaml:"base_url"`
	SimulatedDelay string `yaml:"simulated_delay"`
	Timeout        string `yaml:"timeout"`
}

// Endpoint points at an OpenAPI operation that overrides action and method.
type Endpoint struct {
	Document  string `yaml:"document"`
	Operation string `yaml:"operation"`
	ServerURL string `yaml:"server_url"`
}

// Page configures page rendering.
type Page struct {
	Title      string `yaml:"title"`
	Lang       string `yaml:"lang"`
	Intro      string `yaml:"intro"`
	ExecScript string `yaml:"exec_script"`
	WasmScript string `yaml:"wasm_script"`
}

// Theme carries go-theme tokens used for message styling and CSS variables.
type Theme struct {
	Name     string                       `yaml:"name"`
	Variant  string                       `yaml:"variant"`
	Tokens   map[string]string            `yaml:"tokens"`
	Variants map[string]map[string]string `yaml:"variants"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Form: Form{
			Method:         http.MethodPost,
			SimulatedDelay: contact.DefaultSimulatedDelay.String(),
			Timeout:        "10s",
		},
		Page: Page{
			Title:      "Contacto",
			Lang:       "es",
			ExecScript: "/wasm_exec.js",
			WasmScript: "/contactform.wasm",
		},
		Theme: Theme{Name: "default"},
		Log:   Log{Level: "info", Format: "text"},
	}
}

// Load reads and parses a YAML file. An empty path returns Default.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var allowedMethods = map[string]struct{}{
	http.MethodPost: {}, http.MethodPut: {}, http.MethodPatch: {},
	http.MethodGet: {}, http.MethodDelete: {},
}

// Validate checks methods, durations and log settings.
func (c Config) Validate() error {
	var errs []error
	if method := strings.ToUpper(strings.TrimSpace(c.Form.Method)); method != "" {
		if _, ok := allowedMethods[method]; !ok {
			errs = append(errs, fmt.Errorf("config: form.method %q is not supported", c.Form.Method))
		}
	}
	if _, err := c.SimulatedDelay(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Timeout(); err != nil {
		errs = append(errs, err)
	}
	if (c.Endpoint.Document == "") != (c.Endpoint.Operation == "") {
		errs = append(errs, errors.New("config: endpoint.document and endpoint.operation must be set together"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("config: log.format %q must be text or json", c.Log.Format))
	}
	return errors.Join(errs...)
}

// SimulatedDelay parses form.simulated_delay.
func (c Config) SimulatedDelay() (time.Duration, error) {
	return parseDuration("form.simulated_delay", c.Form.SimulatedDelay, contact.DefaultSimulatedDelay)
}

// Timeout parses form.timeout; zero disables the client timeout.
func (c Config) Timeout() (time.Duration, error) {
	return parseDuration("form.timeout", c.Form.Timeout, 0)
}

// Manifest converts the theme section into a go-theme manifest.
func (c Config) Manifest() *theme.Manifest {
	if len(c.Theme.Tokens) == 0 && len(c.Theme.Variants) == 0 {
		return nil
	}
	manifest := &theme.Manifest{
		Name:    c.Theme.Name,
		Version: "1.0.0",
		Tokens:  c.Theme.Tokens,
	}
	if len(c.Theme.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(c.Theme.Variants))
		for name, tokens := range c.Theme.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: tokens}
		}
	}
	return manifest
}

func parseDuration(key, raw string, fallback time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: %s must not be negative", key)
	}
	return d, nil
}
