package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware assigns each request an ID, echoes it in the X-Request-ID
// header and writes one access log line per request. The resolved tenant is
// included when tenant middleware ran for the route.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		tenant := "-"
		if tenantID, exists := c.Get("tenant_id"); exists {
			tenant = formatTenant(tenantID)
		}

		log.Printf("[%s] %s | %d | %v | %s | tenant=%s | %s",
			requestID[:8],
			c.Request.Method,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			tenant,
			path,
		)

		for _, e := range c.Errors {
			log.Printf("[%s] Error: %v", requestID[:8], e.Err)
		}
	}
}

func formatTenant(v interface{}) string {
	if id, ok := v.(uint); ok {
		return strconv.FormatUint(uint64(id), 10)
	}
	return "-"
}
