package gemini

import "time"

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// HeaderAPIKey carries the credential on every call.
	HeaderAPIKey = "x-goog-api-key"

	// RoleUser is the only role note analysis sends.
	RoleUser = "user"
)
