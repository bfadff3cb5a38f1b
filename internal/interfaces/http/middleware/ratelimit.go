package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier/internal/infrastructure/ratelimit"
	"atelier/internal/shared/logger"
	"atelier/internal/shared/utils"
)

// RateLimit enforces the per-IP budget on public endpoints. When the limiter
// backend is unreachable the request is allowed through; blocking all
// traffic on a redis outage would be worse than letting a burst in.
func RateLimit(limiter ratelimit.Limiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
