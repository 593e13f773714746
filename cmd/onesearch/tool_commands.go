package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/onesearch/onesearch-cli/internal/adapter"
	"github.com/onesearch/onesearch-cli/models"
)

// toolSpec describes one directly-printed tool command. invoke binds the
// command to its [adapter.ToolAPI] method.
type toolSpec struct {
	use     string
	short   string
	example string
	invoke  func(adapter.ToolAPI, context.Context, models.ToolParams) (json.RawMessage, error)
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return newToolCommand(ctx, toolSpec{
		use:     "search <json-params>",
		short:   "Run a web search through the OneSearch server",
		example: `  onesearch search '{"query": "AI news", "limit": 10}'`,
		invoke: func(api adapter.ToolAPI, reqCtx context.Context, params models.ToolParams) (json.RawMessage, error) {
			return api.Search(reqCtx, params)
		},
	})
}

func newScrapeCommand(ctx *commandContext) *cobra.Command {
	return newToolCommand(ctx, toolSpec{
		use:     "scrape <json-params>",
		short:   "Scrape a web page through the OneSearch server",
		example: `  onesearch scrape '{"url": "https://example.com", "formats": ["markdown"]}'`,
		invoke: func(api adapter.ToolAPI, reqCtx context.Context, params models.ToolParams) (json.RawMessage, error) {
			return api.Scrape(reqCtx, params)
		},
	})
}

func newMapCommand(ctx *commandContext) *cobra.Command {
	return newToolCommand(ctx, toolSpec{
		use:     "map <json-params>",
		short:   "Map the URLs of a site through the OneSearch server",
		example: `  onesearch map '{"url": "https://example.com", "limit": 100}'`,
		invoke: func(api adapter.ToolAPI, reqCtx context.Context, params models.ToolParams) (json.RawMessage, error) {
			return api.Map(reqCtx, params)
		},
	})
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	return newToolCommand(ctx, toolSpec{
		use:     "extract <json-params>",
		short:   "Extract structured data from pages through the OneSearch server",
		example: `  onesearch extract '{"urls": ["https://example.com"], "prompt": "list prices"}'`,
		invoke: func(api adapter.ToolAPI, reqCtx context.Context, params models.ToolParams) (json.RawMessage, error) {
			return api.Extract(reqCtx, params)
		},
	})
}

// newToolCommand builds the shared skeleton of the direct tool commands:
// exactly one JSON argument, parsed before any configuration or network work,
// result pretty-printed to stdout.
func newToolCommand(ctx *commandContext, spec toolSpec) *cobra.Command {
	return &cobra.Command{
		Use:     spec.use,
		Short:   spec.short,
		Example: spec.example,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := models.ParseToolParams(args[0])
			if err != nil {
				return err
			}

			api, err := ctx.toolAPI(cmd)
			if err != nil {
				return err
			}

			result, err := spec.invoke(api, cmd.Context(), params)
			if err != nil {
				return err
			}

			return writeJSON(cmd, result)
		},
	}
}
