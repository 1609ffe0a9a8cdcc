package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/police-department/evidence-manager/dto"
	"github.com/police-department/evidence-manager/models"
)

const (
	defaultRequestsPerMinute = 10
	rateLimiterCacheSize     = 10_000
	// a client idle for this long starts over with a full bucket
	rateLimiterIdleTTL = 10 * time.Minute
)

// IPRateLimiter gives each client IP its own token bucket.
type IPRateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *expirable.LRU[string, *rate.Limiter]
}

func NewIPRateLimiter(requestsPerMinute int) *IPRateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	return &IPRateLimiter{
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    requestsPerMinute,
		limiters: expirable.NewLRU[string, *rate.Limiter](rateLimiterCacheSize, nil, rateLimiterIdleTTL),
	}
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	if limiter, ok := l.limiters.Get(ip); ok {
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	// a concurrent first request may replace this limiter, which only grants one extra burst
	l.limiters.Add(ip, limiter)
	return limiter
}

func (l *IPRateLimiter) Allow(ip string) bool {
	return l.limiter(ip).Allow()
}

func (l *IPRateLimiter) Middleware(c *gin.Context) {
	if !l.Allow(c.ClientIP()) {
		c.Header("Retry-After", "60")
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.AdaptBaseResponse(models.NewFailureResponse(models.TooManyRequests)))
		return
	}
	c.Next()
}
