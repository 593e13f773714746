// Package config provides configuration loading, merging, and validation
// facilities for the onesearch CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. JSON config file at <skill root>/references/config.json, with an
//     optional one-hop redirect via its "skill_root_path" key
//  2. Environment variables (ONE_SEARCH_URL and friends)
//
// The main entry point is [Resolve]. A config file that exists but cannot be
// read or parsed is downgraded to a warning and resolution continues with the
// environment; only the complete absence of a server URL is fatal.
package config
