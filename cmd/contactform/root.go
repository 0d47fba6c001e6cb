package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/internal/logging"
	"github.com/goliatone/go-contactform/pkg/config"
	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/endpoint"
	"github.com/goliatone/go-contactform/pkg/style"
)

// app carries state shared by every subcommand once the root has loaded the
// configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "contactform",
		Short: "Render and exercise the #contacto contact form",
		Long: `contactform renders the contact section, submits it from a terminal or an
HTML file, and resolves its endpoint from an OpenAPI document.

Examples:
  contactform render --output index.html
  contactform prompt --config contactform.yml
  contactform submit --input index.html --nombre Ana --email ana@example.com --mensaje "Hola, quisiera información"
  contactform endpoint --document openapi.yaml --operation createContact`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&a.logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")

	cmd.AddCommand(
		newRenderCmd(a),
		newPromptCmd(a),
		newSubmitCmd(a),
		newEndpointCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Output:    cmd.ErrOrStderr(),
		Component: "contactform",
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// target returns the form action and method. A configured OpenAPI operation
// takes precedence over form.action and form.method.
func (a *app) target(ctx context.Context) (string, string, error) {
	action := strings.TrimSpace(a.cfg.Form.Action)
	method := strings.TrimSpace(a.cfg.Form.Method)
	if a.cfg.Endpoint.Document == "" {
		return action, method, nil
	}

	resolved, err := a.resolve(ctx, a.cfg.Endpoint.Document, a.cfg.Endpoint.Operation)
	if err != nil {
		return "", "", err
	}
	a.logger.DebugContext(ctx, "resolved endpoint",
		"operation", resolved.OperationID,
		"method", resolved.Method,
		"action", resolved.Action,
	)
	return resolved.Action, resolved.Method, nil
}

func (a *app) resolve(ctx context.Context, document, operation string) (endpoint.Target, error) {
	timeout, err := a.cfg.Timeout()
	if err != nil {
		return endpoint.Target{}, err
	}
	raw, err := endpoint.Load(ctx, document, nil, timeout)
	if err != nil {
		return endpoint.Target{}, fmt.Errorf("load %s: %w", document, err)
	}
	return endpoint.Resolve(ctx, raw, operation, endpoint.WithServerURL(a.cfg.Endpoint.ServerURL))
}

func (a *app) sender() (*contact.HTTPSender, error) {
	timeout, err := a.cfg.Timeout()
	if err != nil {
		return nil, err
	}
	options := []contact.SenderOption{
		contact.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if raw := strings.TrimSpace(a.cfg.Form.BaseURL); raw != "" {
		base, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("form.base_url: %w", err)
		}
		options = append(options, contact.WithBaseURL(base))
	}
	return contact.NewHTTPSender(options...), nil
}

func (a *app) controllerOptions() ([]contact.Option, error) {
	delay, err := a.cfg.SimulatedDelay()
	if err != nil {
		return nil, err
	}
	sender, err := a.sender()
	if err != nil {
		return nil, err
	}
	return []contact.Option{
		contact.WithLogger(a.logger),
		contact.WithSender(sender),
		contact.WithSimulatedDelay(delay),
	}, nil
}

func (a *app) stylePolicy() *style.Policy {
	return style.FromTheme(a.cfg.Manifest(), a.cfg.Theme.Variant)
}

// outcomeError turns a non-delivered outcome into the command's exit error.
func outcomeError(out contact.Outcome) error {
	if out.OK() {
		return nil
	}
	if out.Err != nil {
		return fmt.Errorf("submit %s: %w", out.Status, out.Err)
	}
	return fmt.Errorf("submit %s", out.Status)
}
