package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	rateLimitWindow = 15 * time.Minute
	rateLimitMax    = 20
)

// RateLimit is a fixed-window per-IP limiter backed by redis, so the count
// survives restarts and is shared across replicas. Trusted IPs are skipped.
// If redis is unreachable the request is allowed through; throttling is a
// protection, not a correctness requirement.
func RateLimit(rdb *redis.Client, trustedIPs []string, log *logrus.Logger) gin.HandlerFunc {
	trusted := make(map[string]struct{}, len(trustedIPs))
	for _, ip := range trustedIPs {
		trusted[ip] = struct{}{}
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if _, ok := trusted[ip]; ok {
			c.Next()
			return
		}

		key := "ratelimit:" + ip
		ctx := c.Request.Context()

		n, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.WithError(err).Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if n == 1 {
			rdb.Expire(ctx, key, rateLimitWindow)
		}

		if n > rateLimitMax {
			ttl, _ := rdb.TTL(ctx, key).Result()
			retryAfter := int(ttl.Seconds())
			if retryAfter < 0 {
				retryAfter = int(rateLimitWindow.Seconds())
			}

			log.WithFields(logrus.Fields{
				"type":       "RATE_LIMIT_VIOLATION",
				"ip":         ip,
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"user_agent": c.Request.UserAgent(),
			}).Warn("rate limit exceeded")

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, envelope{
				Error:   true,
				Status:  http.StatusTooManyRequests,
				Message: "Too many requests from this IP, please try again later",
			})
			return
		}

		c.Next()
	}
}
