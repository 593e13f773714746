package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onesearch/onesearch-cli/internal/adapter"
	"github.com/onesearch/onesearch-cli/internal/config"
	"github.com/onesearch/onesearch-cli/internal/logger"
)

// serverURLGuidance is appended to the configuration error so a first-time
// user knows both ways to point the CLI at a server.
const serverURLGuidance = `configure the server URL one of two ways:
  1. copy references/config.example.json to references/config.json and set mcp_server_url
  2. export ONE_SEARCH_URL=http://localhost:8000`

// commandContext carries the state shared by all subcommands: the logger, the
// --skill-root flag value, and a lazily constructed transport adapter.
type commandContext struct {
	logger    *logger.Logger
	skillRoot string

	// api short-circuits adapter construction; set by tests.
	api adapter.ToolAPI
}

func newCommandContext(logger *logger.Logger) *commandContext {
	return &commandContext{logger: logger}
}

// toolAPI resolves the configuration and builds the HTTP adapter. Config-file
// warnings go to the command's error stream; a missing server URL fails here,
// before any network call. cmd is only used for its error stream.
func (c *commandContext) toolAPI(cmd *cobra.Command) (adapter.ToolAPI, error) {
	if c.api != nil {
		return c.api, nil
	}

	skillRoot := c.skillRoot
	if skillRoot == "" {
		skillRoot = config.DefaultSkillRoot()
	}

	cfg, warnings, err := config.Resolve(skillRoot)
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: "+w)
		c.logger.Warn().Msg(w)
	}
	if err != nil {
		if errors.Is(err, config.ErrNoServerURL) {
			return nil, fmt.Errorf("%w\n%s", err, serverURLGuidance)
		}
		return nil, err
	}

	c.logger.Debug().
		Str("server_url", cfg.ServerURL).
		Str("search_provider", cfg.SearchProvider).
		Msg("configuration resolved")

	return adapter.NewToolAPIAdapter(cfg, c.logger)
}
