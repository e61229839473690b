package ratelimit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response headers set by Middleware.
const (
	HeaderLimit      = "X-RateLimit-Limit"
	HeaderRemaining  = "X-RateLimit-Remaining"
	HeaderReset      = "X-RateLimit-Reset"
	HeaderRetryAfter = "Retry-After"
)

// Middleware rejects requests over the limiter's budget with 429.
// Store failures are logged and the request is let through.
func Middleware(l *Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := ClientIdentifier(c.Request)

		d, err := l.Allow(c.Request.Context(), client)
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request",
				zap.String("policy", l.policy.Name),
				zap.Error(err),
			)
			c.Next()
			return
		}

		c.Header(HeaderLimit, strconv.Itoa(d.Limit))
		c.Header(HeaderRemaining, strconv.Itoa(d.Remaining))
		c.Header(HeaderReset, strconv.FormatInt(d.ResetTime.Unix(), 10))

		if !d.Allowed {
			c.Header(HeaderRetryAfter, strconv.Itoa(d.RetryAfter(l.clock.Now())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
