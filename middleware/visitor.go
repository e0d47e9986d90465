package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// TrackedPaths are the public pages that count as a visit.
var TrackedPaths = map[string]bool{
	"/":           true,
	"/about":      true,
	"/portfolio":  true,
	"/resume":     true,
	"/contact":    true,
	"/experience": true,
	"/blog":       true,
	"/terms":      true,
	"/privacy":    true,
}

// VisitRecorder stores one visit. *services.VisitService satisfies it.
type VisitRecorder interface {
	Track(ip string, now time.Time) error
}

// TrackVisits records a visit before every request to a tracked route.
// A failed insert is logged and the request carries on.
func TrackVisits(visits VisitRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if TrackedPaths[c.FullPath()] {
			if err := visits.Track(c.ClientIP(), time.Now()); err != nil {
				log.Printf("⚠️ visit not recorded for %s: %v", c.FullPath(), err)
			}
		}
		c.Next()
	}
}
