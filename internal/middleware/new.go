package middleware

import (
	"mobile-recovery-booking/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the shared middleware set. requestsPerMin bounds how many
// requests a single client IP may issue per minute across rate-limited routes.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
