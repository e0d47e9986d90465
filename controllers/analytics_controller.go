package controllers

import (
	"log"
	"net/http"
	"time"

	"portfolio-site/services"
	"portfolio-site/utils"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

const StatsInterval = 2 * time.Second

type AnalyticsController struct {
	VisitSvc *services.VisitService
	Interval time.Duration
}

func NewAnalyticsController(svc *services.VisitService) *AnalyticsController {
	return &AnalyticsController{VisitSvc: svc, Interval: StatsInterval}
}

func (c *AnalyticsController) Analytics(ctx *gin.Context) {
	stats, err := c.VisitSvc.Stats(time.Now())
	if err != nil {
		utils.ServerError(ctx, "visit stats", err)
		return
	}
	ctx.HTML(http.StatusOK, "admin/analytics.html", gin.H{"Title": "Analytics", "Stats": stats})
}

// ----------------------------------------------------
// GET /admin/stream-stats
// Pushes a fresh snapshot right away and then every Interval until the
// client goes away.
// ----------------------------------------------------
func (c *AnalyticsController) StreamStats(ctx *gin.Context) {
	header := ctx.Writer.Header()
	header.Set("Content-Type", sse.ContentType)
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	ctx.Status(http.StatusOK)

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	done := ctx.Request.Context().Done()
	for {
		stats, err := c.VisitSvc.Stats(time.Now())
		if err != nil {
			log.Printf("⚠️ stream-stats: %v", err)
		} else {
			if err := sse.Encode(ctx.Writer, sse.Event{Data: stats}); err != nil {
				log.Printf("⚠️ stream-stats write: %v", err)
				return
			}
			ctx.Writer.Flush()
		}

		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}
