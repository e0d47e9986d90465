package middleware

import (
	"net/http"

	"portfolio-site/services"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// LoadSession attaches the request's *services.Session to the gin context.
func LoadSession(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, sessions.Load(c))
		c.Next()
	}
}

// CurrentSession returns the session loaded by LoadSession, or an empty one.
func CurrentSession(c *gin.Context) *services.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*services.Session); ok {
			return sess
		}
	}
	return &services.Session{}
}

// RequireAdmin redirects to the login page unless an admin is logged in.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Authenticated() {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
