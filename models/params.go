// SPDX-License-Identifier: Apache-2.0

package models

import (
	"encoding/json"
	"fmt"
)

// ToolParams is the parameter mapping sent as the body of a tool request.
// Keys and values are forwarded to the OneSearch server verbatim; the client
// performs no schema validation beyond requiring a JSON object.
type ToolParams map[string]any

// ParseToolParams decodes raw (a CLI argument) into a ToolParams mapping.
// Returns an error if raw is not a valid JSON object. An empty object is
// permitted.
func ParseToolParams(raw string) (ToolParams, error) {
	var params ToolParams
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, fmt.Errorf("invalid JSON parameters: %w", err)
	}

	return params, nil
}
