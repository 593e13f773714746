package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/onesearch/onesearch-cli/internal/config"
	"github.com/onesearch/onesearch-cli/internal/logger"
	"github.com/onesearch/onesearch-cli/models"
)

// Per-endpoint timeouts. Scraping and mapping wait on the server fetching
// third-party pages, so they get more headroom than plain search; the health
// probe must fail fast.
const (
	searchTimeout  = 60 * time.Second
	scrapeTimeout  = 120 * time.Second
	mapTimeout     = 120 * time.Second
	extractTimeout = 120 * time.Second
	healthTimeout  = 5 * time.Second
)

// toolTimeouts maps each relayable tool to its default timeout. The map also
// acts as the dispatch table for Call: a name outside this table is rejected
// before any network activity.
var toolTimeouts = map[string]time.Duration{
	"search":  searchTimeout,
	"scrape":  scrapeTimeout,
	"map":     mapTimeout,
	"extract": extractTimeout,
}

type toolAPIAdapter struct {
	client  *resty.Client
	baseURL string

	// timeout, when non-zero, overrides the per-tool defaults. It comes from
	// the search_timeout config key and never applies to the health probe.
	timeout time.Duration

	logger *logger.Logger
}

// NewToolAPIAdapter constructs the HTTP implementation of [ToolAPI]. It
// normalises and validates the base URL from cfg.ServerURL and disables
// resty's retry machinery so every operation maps to exactly one request.
//
// Returns an error if cfg.ServerURL cannot be parsed as a valid URL.
func NewToolAPIAdapter(cfg *config.Config, logger *logger.Logger) (ToolAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0)

	return &toolAPIAdapter{
		client:  client,
		baseURL: baseURL,
		timeout: cfg.SearchTimeout,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Search implements [ToolAPI].
func (a *toolAPIAdapter) Search(ctx context.Context, params models.ToolParams) (json.RawMessage, error) {
	return a.postTool(ctx, "search", params, searchTimeout)
}

// Scrape implements [ToolAPI].
func (a *toolAPIAdapter) Scrape(ctx context.Context, params models.ToolParams) (json.RawMessage, error) {
	return a.postTool(ctx, "scrape", params, scrapeTimeout)
}

// Map implements [ToolAPI].
func (a *toolAPIAdapter) Map(ctx context.Context, params models.ToolParams) (json.RawMessage, error) {
	return a.postTool(ctx, "map", params, mapTimeout)
}

// Extract implements [ToolAPI].
func (a *toolAPIAdapter) Extract(ctx context.Context, params models.ToolParams) (json.RawMessage, error) {
	return a.postTool(ctx, "extract", params, extractTimeout)
}

// Call implements [ToolAPI]. It dispatches to the named tool via the static
// timeout table; an unknown name fails with [ErrUnknownTool] before any
// request is built.
func (a *toolAPIAdapter) Call(ctx context.Context, tool string, params models.ToolParams) (json.RawMessage, error) {
	timeout, ok := toolTimeouts[tool]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}

	return a.postTool(ctx, tool, params, timeout)
}

// Health implements [ToolAPI]. The config timeout override is deliberately
// not applied here: a liveness probe that waits two minutes is useless.
func (a *toolAPIAdapter) Health(ctx context.Context) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	resp, err := a.request(ctx).Get("/health")
	if err != nil {
		return nil, fmt.Errorf("%w: %v (server URL: %s)", ErrTransport, err, a.baseURL)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeJSONBody(resp.Body())
}

// postTool issues the single POST request for a tool invocation. params is
// serialised verbatim as UTF-8 JSON; an empty mapping produces "{}" rather
// than an empty body.
func (a *toolAPIAdapter) postTool(ctx context.Context, tool string, params models.ToolParams, timeout time.Duration) (json.RawMessage, error) {
	if a.timeout > 0 {
		timeout = a.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if params == nil {
		params = models.ToolParams{}
	}

	resp, err := a.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(params).
		Post("/api/tools/" + tool)
	if err != nil {
		return nil, fmt.Errorf("%w: %v (server URL: %s)", ErrTransport, err, a.baseURL)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeJSONBody(resp.Body())
}

func (a *toolAPIAdapter) request(ctx context.Context) *resty.Request {
	requestID := uuid.NewString()
	a.logger.Debug().Str("request_id", requestID).Str("base_url", a.baseURL).Msg("outbound request")

	return a.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID)
}

// decodeJSONBody validates that body is well-formed JSON and returns it
// verbatim. A 2xx response with a non-JSON body is a failed invocation.
func decodeJSONBody(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrBadResponse)
	}

	return json.RawMessage(trimmed), nil
}
