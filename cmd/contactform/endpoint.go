package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newEndpointCmd(a *app) *cobra.Command {
	var document, operation string
	cmd := &cobra.Command{
		Use:   "endpoint",
		Short: "Resolve the form action and method from an OpenAPI operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if document == "" {
				document = a.cfg.Endpoint.Document
			}
			if operation == "" {
				operation = a.cfg.Endpoint.Operation
			}
			if document == "" || operation == "" {
				return errors.New("endpoint: --document and --operation are required")
			}

			target, err := a.resolve(cmd.Context(), document, operation)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", target.OperationID, target.Method, target.Action)
			return nil
		},
	}
	cmd.Flags().StringVar(&document, "document", "", "OpenAPI document path or URL")
	cmd.Flags().StringVar(&operation, "operation", "", "operation id")
	return cmd
}
