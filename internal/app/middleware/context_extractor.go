package middleware

import (
	"context"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const LogDetailsKey contextKey = "logDetails"

// AttachRequestDetails stamps a request id and the basic request facts into
// the context so the logger can enrich every line emitted for this request.
func AttachRequestDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		details := models.RequestDetails{
			RequestID:   uuid.New().String(),
			IP:          c.ClientIP(),
			UserAgent:   c.Request.UserAgent(),
			HTTPMethod:  c.Request.Method,
			Path:        c.Request.URL.Path,
			RequestTime: time.Now().UTC().Format(time.RFC3339Nano),
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), LogDetailsKey, details))
		c.Next()
	}
}
