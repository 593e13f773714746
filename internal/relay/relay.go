// SPDX-License-Identifier: Apache-2.0

// Package relay implements the generic command relay: it dispatches a named
// command through [adapter.ToolAPI] and folds the outcome into the uniform
// {success, result|error} envelope, so callers get one JSON shape regardless
// of how the invocation ended.
package relay

import (
	"context"
	"encoding/json"

	"github.com/onesearch/onesearch-cli/internal/adapter"
	"github.com/onesearch/onesearch-cli/internal/logger"
	"github.com/onesearch/onesearch-cli/models"
)

// Relay wraps a [adapter.ToolAPI] with envelope semantics.
type Relay struct {
	api    adapter.ToolAPI
	logger *logger.Logger
}

// New constructs a Relay on top of api.
func New(api adapter.ToolAPI, logger *logger.Logger) *Relay {
	return &Relay{api: api, logger: logger}
}

// Invoke runs the named command ("search", "scrape", "map", "extract" or
// "health") and returns the outcome envelope. The returned error mirrors the
// envelope: non-nil exactly when Success is false, so the caller can derive
// the process exit code after printing the envelope.
func (r *Relay) Invoke(ctx context.Context, command string, params models.ToolParams) (models.Envelope, error) {
	var result json.RawMessage
	var err error

	if command == "health" {
		result, err = r.api.Health(ctx)
	} else {
		result, err = r.api.Call(ctx, command, params)
	}

	if err != nil {
		r.logger.Error().Err(err).Str("command", command).Msg("relay command failed")
		return models.ErrorEnvelope(err), err
	}

	return models.SuccessEnvelope(result), nil
}
