package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/terminal"
)

func newPromptCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in and submit the contact form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			action, method, err := a.target(ctx)
			if err != nil {
				return err
			}
			options, err := a.controllerOptions()
			if err != nil {
				return err
			}

			sessionOpts := []terminal.Option{
				terminal.WithOutput(cmd.OutOrStdout()),
				terminal.WithTarget(action, method),
			}
			if plain {
				sessionOpts = append(sessionOpts, terminal.WithTheme(terminal.PlainTheme()))
			}
			session := terminal.New(sessionOpts...)

			ctrl := contact.New(session, options...)
			if err := ctrl.Init(); err != nil {
				return err
			}
			out, err := session.Run(ctx)
			if err != nil {
				return err
			}
			return outcomeError(out)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colours")
	return cmd
}
