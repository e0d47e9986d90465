package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request. The stats stream is logged when it ends.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		marker := "➡️"
		switch {
		case status >= 500:
			marker = "❌"
		case status >= 400:
			marker = "⚠️"
		}
		log.Printf("%s %s %s %s %d %s", marker, c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, latency)
	}
}
