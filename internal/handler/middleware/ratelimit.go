package middleware

import (
	"net/http"
	"sync"
	"time"

	"lounge-scheduler/internal/handler/httperr"
	"lounge-scheduler/internal/pkg/config"
	"lounge-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an idle client keeps its token bucket.
const limiterIdleTTL = 10 * time.Minute

var errRateLimited = errs.New("rate limit exceeded")

// IPRateLimiter keeps one token bucket per client IP. Buckets of clients that
// stay idle for limiterIdleTTL are dropped.
type IPRateLimiter struct {
	limiters *cache.Cache
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: cache.New(limiterIdleTTL, limiterIdleTTL),
		r:        r,
		b:        b,
	}
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	if l, ok := i.limiters.Get(ip); ok {
		i.limiters.SetDefault(ip, l)
		return l.(*rate.Limiter)
	}
	l := rate.NewLimiter(i.r, i.b)
	i.limiters.SetDefault(ip, l)
	return l
}

func (i *IPRateLimiter) Allow(ip string) bool {
	return i.GetLimiter(ip).Allow()
}

// RateLimiter rejects requests beyond cfg.RequestsPerSecond per client IP.
// A non-positive rate disables limiting.
func RateLimiter(cfg config.RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := NewIPRateLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
