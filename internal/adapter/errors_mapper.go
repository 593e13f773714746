package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := upstreamErrorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, msg)
	default:
		return fmt.Errorf("%w: %s", ErrUpstream, msg)
	}
}

// upstreamErrorMessage extracts a human-readable message from an error
// response. JSON bodies with an "error" field surface that field alone;
// anything else falls back to "HTTP <code>: <body>".
func upstreamErrorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Sprintf("HTTP %d: %s", resp.StatusCode(), body)
}
