package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cinema/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginRateLimit is a fixed-window counter per client IP. With no redis
// client it lets everything through, and redis errors fail open.
func LoginRateLimit(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if rdb == nil || limit <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		bucket := time.Now().UnixNano() / int64(window)
		key := fmt.Sprintf("ratelimit:login:%s:%d", c.ClientIP(), bucket)

		pipe := rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			logger.Warn("login rate limiter unavailable",
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.Error(err),
			)
			c.Next()
			return
		}

		count := incr.Val()
		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			windowEnd := time.Unix(0, (bucket+1)*int64(window))
			secs := int(math.Ceil(time.Until(windowEnd).Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			resp := models.ErrorResponse("Request was throttled.")
			resp.RequestID = c.GetString(RequestIDKey)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
			return
		}
		c.Next()
	}
}
