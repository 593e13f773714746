package adapter

import "errors"

// Sentinel errors for the failure taxonomy of a relayed call. Upstream HTTP
// statuses are folded into the first group by mapHTTPError; the second group
// covers failures that never reached (or never left) the server.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	// ErrUpstream covers any other non-2xx response status.
	ErrUpstream = errors.New("upstream error")

	// ErrTransport indicates a connection-level failure (DNS, refused,
	// timeout); the wrapped message names the server URL attempted.
	ErrTransport = errors.New("connection error")
	// ErrBadResponse indicates a 2xx response whose body was not valid JSON.
	ErrBadResponse = errors.New("invalid server response")
	// ErrUnknownTool indicates a relay request for a tool the server does not
	// expose; no network call is made.
	ErrUnknownTool = errors.New("unknown tool")
)
