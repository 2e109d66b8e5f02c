package ratelimit

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware that throttles requests by client IP.
// It is a no-op when Redis is disabled.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		result, err := s.Check(ctx, c.ClientIP())
		if err != nil {
			// The limiter failing must not take writes down with it.
			s.logger.InfoWithError(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		if !result.ResetAt.IsZero() {
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))
		}

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
				"code":  "RATE_LIMITED",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
