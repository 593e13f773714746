package config

import "errors"

// Validation errors returned by [Config.validate] when the merged
// configuration cannot support a network call.
var (
	// ErrNoServerURL indicates that neither the config file nor the
	// ONE_SEARCH_URL environment variable supplied a server base URL.
	// No network call is attempted while this error stands.
	ErrNoServerURL = errors.New("no server URL configured")
)
