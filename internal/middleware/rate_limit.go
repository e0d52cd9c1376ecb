package middleware

import (
	"net/http"
	"sync"

	"laptop-store-api/internal/pkg/apperror"
	"laptop-store-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type userLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func (ul *userLimiters) get(key string) *rate.Limiter {
	ul.mu.Lock()
	defer ul.mu.Unlock()

	if lim, ok := ul.limiters[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(ul.rps, ul.burst)
	ul.limiters[key] = lim
	return lim
}

// RateLimitByUser throttles per authenticated user; anonymous requests
// fall back to the client IP. Protects relation-heavy mutations from
// button mashing and bots.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	ul := &userLimiters{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}

	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = c.ClientIP()
		}

		if !ul.get(key).Allow() {
			response.Error(
				c,
				http.StatusTooManyRequests,
				apperror.CodeTooManyRequests,
				"Too many requests, slow down",
				nil,
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
