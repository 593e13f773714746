// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Config is the resolved configuration of a single CLI invocation. It is
// populated by merging the JSON config file (if any) with environment
// variables; the file wins for fields both sources set. The env struct tags
// name the fallback environment variables (caarlos0/env); the file source has
// its own schema in [fileConfig].
type Config struct {
	// ServerURL is the base URL of the OneSearch server
	// (e.g. "http://localhost:8000"). Required; there is no default that
	// resolves to a working service.
	// Env: ONE_SEARCH_URL
	ServerURL string `env:"ONE_SEARCH_URL"`

	// SearchProvider names the upstream search provider the server should
	// use. Informational only; the client forwards it nowhere and logs it.
	// Env: ONE_SEARCH_PROVIDER
	SearchProvider string `env:"ONE_SEARCH_PROVIDER"`

	// SearchTimeout overrides the per-endpoint request timeout when non-zero
	// (e.g. "90s"). Config files may also express it as integer milliseconds.
	// Env: ONE_SEARCH_TIMEOUT
	SearchTimeout time.Duration `env:"ONE_SEARCH_TIMEOUT"`
}

// Resolve loads, merges, and validates the CLI configuration for the skill
// rooted at skillRoot, in the following priority order (first source to set a
// field wins):
//  1. JSON config file at <skillRoot>/references/config.json
//  2. Environment variables
//
// A file that is missing is skipped silently; a file that exists but cannot
// be parsed produces a warning and resolution continues. Returns the resolved
// *Config, any warnings collected along the way, and an error if no source
// yields a server URL.
func Resolve(skillRoot string) (*Config, []string, error) {
	b := newConfigBuilder()
	if skillRoot != "" {
		b = b.withFile(FilePath(skillRoot))
	}

	cfg, err := b.withEnv().build()
	return cfg, b.warnings, err
}
