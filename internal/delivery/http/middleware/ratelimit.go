package middleware

import (
	"sync"
	"time"

	"pcd-jobs/internal/pkg/metrics"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

const rateLimitIdleTTL = 5 * time.Minute

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter is a token bucket per client IP for the credential endpoints.
type RateLimiter struct {
	perSecond rate.Limit
	burst     int
	metrics   *metrics.Metrics

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastPrune time.Time
	now       func() time.Time
}

// NewRateLimiter returns nil when perSecond <= 0, which disables limiting.
func NewRateLimiter(perSecond float64, burst int, m *metrics.Metrics) *RateLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		metrics:   m,
		buckets:   map[string]*bucket{},
		now:       time.Now,
	}
}

func (l *RateLimiter) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if l == nil {
			return c.Next()
		}
		if !l.allow(c.IP()) {
			if l.metrics != nil {
				l.metrics.RateLimitRejected.Inc()
			}
			c.Set(fiber.HeaderRetryAfter, "1")
			return NewAppError(fiber.StatusTooManyRequests, "Too many requests", nil, nil)
		}
		return c.Next()
	}
}

func (l *RateLimiter) allow(ip string) bool {
	if ip == "" {
		ip = "unknown"
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastPrune) > time.Minute {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > rateLimitIdleTTL {
				delete(l.buckets, k)
			}
		}
		l.lastPrune = now
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.perSecond, l.burst)}
		l.buckets[ip] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}
