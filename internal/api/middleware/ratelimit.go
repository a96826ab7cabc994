package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
	"todo_api/internal/common"

	"golang.org/x/time/rate"
)

type multiLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*limBucket
}

type limBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newMultiLimiter(limit rate.Limit, burst int, ttl time.Duration) *multiLimiter {
	return &multiLimiter{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*limBucket),
	}
}

func (m *multiLimiter) allow(key string) bool {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.entries[key]
	if b == nil {
		b = &limBucket{lim: rate.NewLimiter(m.limit, m.burst), lastSeen: now}
		m.entries[key] = b
	}
	b.lastSeen = now

	for k, v := range m.entries {
		if now.Sub(v.lastSeen) > m.ttl {
			delete(m.entries, k)
		}
	}
	return b.lim.AllowN(now, 1)
}

// RateLimitByIP allows perMinute requests per client IP with the given burst.
// A non-positive perMinute disables the limit.
func RateLimitByIP(perMinute, burst int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst <= 0 {
		burst = 1
	}
	limiter := newMultiLimiter(rate.Limit(float64(perMinute)/60.0), burst, 10*time.Minute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.allow(clientIP(r)) {
				w.Header().Set("Retry-After", "60")
				common.RespondWithAppError(w, common.WithMessage(common.ErrTooManyRequests, "Too many login attempts, try again later"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keys on the connection peer. Forwarded headers are only honored
// when chi's RealIP has already rewritten RemoteAddr upstream.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
