package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/Vantage-CRM/vantage-crm-backend/config"
	"github.com/Vantage-CRM/vantage-crm-backend/models"
	"github.com/gin-gonic/gin"
)

// limiterKey buckets counters per caller IP, method and route pattern, so
// POST /presets and POST /presets/:id/use are metered independently.
func limiterKey(c *gin.Context) string {
	return "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
}

// RateLimiter enforces a fixed window of maxRequests per caller and route.
// The window state lives in Redis so every instance shares one budget.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := limiterKey(c)
		resetKey := key + ":resetAt"

		count, err := config.RedisClient.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("[rate-limiter] counter increment failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter unavailable"))
			c.Abort()
			return
		}

		// First hit opens the window; the stored resetAt keeps the header
		// stable for every later request in the same window
		if count == 1 {
			config.RedisClient.Expire(ctx, key, window)
			config.RedisClient.Set(ctx, resetKey, time.Now().Add(window).Unix(), window)
		}

		resetAtUnix, _ := config.RedisClient.Get(ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Controllers fold this into the response envelope
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
