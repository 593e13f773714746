package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/onesearch/onesearch-cli/internal/logger"
	"github.com/onesearch/onesearch-cli/models"
)

// stubToolAPI is a canned ToolAPI for command-layer tests.
type stubToolAPI struct {
	calls      int
	lastTool   string
	lastParams models.ToolParams

	result json.RawMessage
	err    error
}

func (s *stubToolAPI) Search(ctx context.Context, p models.ToolParams) (json.RawMessage, error) {
	return s.record("search", p)
}

func (s *stubToolAPI) Scrape(ctx context.Context, p models.ToolParams) (json.RawMessage, error) {
	return s.record("scrape", p)
}

func (s *stubToolAPI) Map(ctx context.Context, p models.ToolParams) (json.RawMessage, error) {
	return s.record("map", p)
}

func (s *stubToolAPI) Extract(ctx context.Context, p models.ToolParams) (json.RawMessage, error) {
	return s.record("extract", p)
}

func (s *stubToolAPI) Call(_ context.Context, tool string, p models.ToolParams) (json.RawMessage, error) {
	return s.record(tool, p)
}

func (s *stubToolAPI) Health(context.Context) (json.RawMessage, error) {
	return s.record("health", nil)
}

func (s *stubToolAPI) record(tool string, p models.ToolParams) (json.RawMessage, error) {
	s.calls++
	s.lastTool = tool
	s.lastParams = p
	return s.result, s.err
}

// runCommand executes the root command with args and captured streams.
func runCommand(t *testing.T, ctx *commandContext, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCommand(ctx)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// stubContext builds a commandContext with an injected stub adapter.
func stubContext(api *stubToolAPI) *commandContext {
	ctx := newCommandContext(testLogger())
	ctx.api = api
	return ctx
}

func testLogger() *logger.Logger {
	return logger.Nop()
}

// clearEnv blanks all ONE_SEARCH_* variables for tests that resolve real
// configuration.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ONE_SEARCH_URL", "")
	t.Setenv("ONE_SEARCH_PROVIDER", "")
	t.Setenv("ONE_SEARCH_TIMEOUT", "")
}
