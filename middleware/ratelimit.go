package middleware

import (
	"net/http"
	"sync"

	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
}

func (l *clientLimiter) get(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}
	lim := rate.NewLimiter(l.rps, l.burst)
	actual, _ := l.limiters.LoadOrStore(key, lim)
	return actual.(*rate.Limiter)
}

// RateLimit rejects requests over rps per client IP with 429. Burst defaults
// to rps when burst <= 0.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if burst <= 0 {
		burst = int(rps)
		if burst < 1 {
			burst = 1
		}
	}
	l := &clientLimiter{rps: rate.Limit(rps), burst: burst}

	return func(c *gin.Context) {
		if !l.get(c.ClientIP()).Allow() {
			utils.JSONError(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
