// utils/ratelimit.go
package utils

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter builds a per-client token-bucket middleware allowing at most
// max requests per window. Each route gets its own bucket map, keyed by
// client IP, matching the per-route limiter setup of the API.
func RateLimiter(max int, window time.Duration) gin.HandlerFunc {
	var mu sync.Mutex
	clients := make(map[string]*clientBucket)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		bucket, ok := clients[ip]
		if !ok {
			bucket = &clientBucket{
				limiter: rate.NewLimiter(rate.Every(window/time.Duration(max)), max),
			}
			clients[ip] = bucket
		}
		bucket.lastSeen = now

		// Drop buckets idle long enough to be full again
		if len(clients) > 1000 {
			for key, b := range clients {
				if now.Sub(b.lastSeen) > 3*window {
					delete(clients, key)
				}
			}
		}
		allowed := bucket.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, try again 1 minute later.",
			})
			return
		}
		c.Next()
	}
}
