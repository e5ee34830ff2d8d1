package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiter builds the default per-IP limiter used on the public
// read endpoints. Mutation endpoints get the stricter blocking limiter.
func (m *Middlewares) CreateRateLimiter() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}
