package main

import (
	"github.com/spf13/cobra"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the OneSearch server is reachable and healthy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := ctx.toolAPI(cmd)
			if err != nil {
				return err
			}

			result, err := api.Health(cmd.Context())
			if err != nil {
				return err
			}

			return writeJSON(cmd, result)
		},
	}
}
