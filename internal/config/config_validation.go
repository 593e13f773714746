// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [Config] can support an outbound
// request. URL well-formedness is checked later, when the transport adapter
// normalizes the base URL.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.ServerURL == "" {
		return ErrNoServerURL
	}

	return nil
}
