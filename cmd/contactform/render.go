package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/page"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output      string
		sectionOnly bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the contact page or only its #contacto section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			action, method, err := a.target(cmd.Context())
			if err != nil {
				return err
			}
			renderer, err := page.New()
			if err != nil {
				return err
			}

			p := page.Page{
				Title:      a.cfg.Page.Title,
				Lang:       a.cfg.Page.Lang,
				Intro:      a.cfg.Page.Intro,
				Action:     action,
				Method:     method,
				Theme:      a.cfg.Manifest(),
				Variant:    a.cfg.Theme.Variant,
				ExecScript: a.cfg.Page.ExecScript,
				WasmScript: a.cfg.Page.WasmScript,
			}

			var buf bytes.Buffer
			if sectionOnly {
				err = renderer.RenderSection(&buf, p)
			} else {
				err = renderer.Render(&buf, p)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Page written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&sectionOnly, "section", false, "render only the #contacto section")
	return cmd
}
