// SPDX-License-Identifier: Apache-2.0

package models

import "encoding/json"

// Envelope is the uniform outcome wrapper printed by the generic relay
// command. Success is true iff the server returned a 2xx status and the body
// parsed as JSON; in that case Result holds the decoded body verbatim.
// On failure Error carries a human-readable description and Result is empty.
type Envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// SuccessEnvelope wraps a raw JSON result in a successful Envelope.
func SuccessEnvelope(result json.RawMessage) Envelope {
	return Envelope{Success: true, Result: result}
}

// ErrorEnvelope wraps an error in a failed Envelope.
func ErrorEnvelope(err error) Envelope {
	return Envelope{Success: false, Error: err.Error()}
}
