package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/dom"
)

func newSubmitCmd(a *app) *cobra.Command {
	var (
		input  string
		output string
		values = map[string]*string{
			contact.FieldNombre:  new(string),
			contact.FieldEmail:   new(string),
			contact.FieldMensaje: new(string),
		}
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the contact form found in an HTML page",
		Long: `submit parses an HTML page, fills the #contacto form fields and runs the same
validation and submission the browser would. The page's own action and method
are used; an empty action or "#" simulates the delivery.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			doc, err := parseDocument(cmd.InOrStdin(), input, dom.WithStylePolicy(a.stylePolicy()))
			if err != nil {
				return err
			}
			options, err := a.controllerOptions()
			if err != nil {
				return err
			}

			ctrl := contact.New(doc, options...)
			if err := ctrl.Init(); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			for id, value := range values {
				if !cmd.Flags().Changed(id) {
					continue
				}
				if !doc.SetValue(id, *value) {
					a.logger.WarnContext(ctx, "field not found", "field", id)
				}
			}

			out, ok := doc.Submit(ctx)
			if !ok {
				return errors.New("submit handler not bound")
			}
			text, severity := doc.Status()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", out.Status, severity, text)

			if output != "" {
				if err := os.WriteFile(output, []byte(doc.String()), 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
			return outcomeError(out)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "HTML page to load (- for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the resulting HTML to this file")
	cmd.Flags().StringVar(values[contact.FieldNombre], contact.FieldNombre, "", "name field value")
	cmd.Flags().StringVar(values[contact.FieldEmail], contact.FieldEmail, "", "email field value")
	cmd.Flags().StringVar(values[contact.FieldMensaje], contact.FieldMensaje, "", "message field value")
	return cmd
}

func parseDocument(stdin io.Reader, path string, options ...dom.Option) (*dom.Document, error) {
	if path == "" || path == "-" {
		return dom.Parse(stdin, options...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.Parse(f, options...)
}
