package middleware

import (
	"smart-notes/pkg/log"
)

// Middleware holds the gin middlewares of the HTTP server.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(ratePerMin),
	}
}
