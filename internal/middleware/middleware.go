package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/cinema/internal/helpers"
	"github.com/joshua-takyi/cinema/internal/models"
	"go.uber.org/zap"
)

const (
	RequestIDKey = "request_id"
	ClaimsKey    = "user"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		logger.Info("HTTP Request",
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// ErrorHandler provides centralized error handling
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		requestID := c.GetString(RequestIDKey)

		logger.Error("Request error",
			zap.String("request_id", requestID),
			zap.Error(err.Err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)

		// Don't return error details
		if !c.Writer.Written() {
			resp := models.ErrorResponse("Internal server error")
			resp.RequestID = requestID
			c.JSON(http.StatusInternalServerError, resp)
		}
	}
}

func AuthMiddleware(jwtSecret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := helpers.ExtractToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "Authentication credentials were not provided.")
			return
		}

		claims, err := helpers.ValidateToken(jwtSecret, token)
		if err != nil {
			logger.Debug("rejected token",
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.Error(err),
			)
			abortUnauthorized(c, "Invalid token.")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	resp := models.ErrorResponse(msg)
	resp.RequestID = c.GetString(RequestIDKey)
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}
