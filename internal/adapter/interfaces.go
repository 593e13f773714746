// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// OneSearch server.
//
// The primary abstraction is [ToolAPI], which decouples the command layer
// from the underlying protocol. The package ships a single HTTP/REST
// implementation ([NewToolAPIAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrTransport] for connection
// failures).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/onesearch/onesearch-cli/models"
)

// ToolAPI defines the remote operations the onesearch CLI can relay to the
// OneSearch server. Implementations are responsible for serialisation,
// per-endpoint timeouts, and mapping transport-level failures to the sentinel
// errors defined in this package.
//
// Every method performs exactly one outbound network call; no operation is
// retried. The returned json.RawMessage is the response body verbatim,
// guaranteed to be valid JSON.
type ToolAPI interface {
	// Search relays a web-search request to POST /api/tools/search.
	Search(ctx context.Context, params models.ToolParams) (json.RawMessage, error)

	// Scrape relays a page-scrape request to POST /api/tools/scrape.
	Scrape(ctx context.Context, params models.ToolParams) (json.RawMessage, error)

	// Map relays a site-mapping request to POST /api/tools/map.
	Map(ctx context.Context, params models.ToolParams) (json.RawMessage, error)

	// Extract relays a structured-extraction request to
	// POST /api/tools/extract.
	Extract(ctx context.Context, params models.ToolParams) (json.RawMessage, error)

	// Call relays params to the named tool endpoint. Returns
	// [ErrUnknownTool] without a network call if tool is not one of the
	// relayable tools.
	Call(ctx context.Context, tool string, params models.ToolParams) (json.RawMessage, error)

	// Health checks server liveness with GET /health (no request body) under
	// a short timeout.
	Health(ctx context.Context) (json.RawMessage, error)
}
