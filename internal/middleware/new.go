package middleware

import (
	"task-management/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain route group.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
