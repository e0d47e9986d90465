package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerError logs err with context and aborts with a plain 500.
func ServerError(c *gin.Context, context string, err error) {
	log.Printf("❌ %s %s: %s: %v", c.Request.Method, c.Request.URL.Path, context, err)
	c.AbortWithStatus(http.StatusInternalServerError)
}

// BadRequest aborts with a plain-text 400.
func BadRequest(c *gin.Context, message string) {
	c.String(http.StatusBadRequest, message)
	c.Abort()
}
