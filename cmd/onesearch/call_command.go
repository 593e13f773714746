package main

import (
	"github.com/spf13/cobra"

	"github.com/onesearch/onesearch-cli/internal/relay"
	"github.com/onesearch/onesearch-cli/models"
)

func newCallCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "call <command> [json-params]",
		Short: "Relay a command and print the uniform success/error envelope",
		Long: `Relay a command (search, scrape, map, extract or health) to the OneSearch
server and print the outcome wrapped in the {success, result|error} envelope.
The envelope is printed on stdout for failures too; the exit code still
reports the outcome (0 on success, 1 on failure).`,
		Example: `  onesearch call search '{"query": "AI news"}'
  onesearch call health`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := models.ToolParams{}
			if len(args) == 2 {
				var err error
				params, err = models.ParseToolParams(args[1])
				if err != nil {
					return err
				}
			}

			api, err := ctx.toolAPI(cmd)
			if err != nil {
				return err
			}

			envelope, invokeErr := relay.New(api, ctx.logger).Invoke(cmd.Context(), args[0], params)
			if err := writeJSON(cmd, envelope); err != nil {
				return err
			}

			return invokeErr
		},
	}
}
