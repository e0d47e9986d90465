package routes

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolio-site/config"
	"portfolio-site/middleware"
	"portfolio-site/views"
)

// splitList splits a comma-separated env value, dropping blanks.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseCorsOrigins(raw string) []string {
	origins := splitList(raw)
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// parseTrustedProxies returns nil for an empty value, which makes
// ClientIP use the connection's remote address only.
func parseTrustedProxies(raw string) []string {
	proxies := splitList(raw)
	if len(proxies) == 0 {
		return nil
	}
	return proxies
}

// SetupRouter mounts the public site and the admin area.
func SetupRouter(h *Handlers, cfg *config.Config) (*gin.Engine, error) {
	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(parseTrustedProxies(cfg.TrustedProxies)); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), middleware.Logger())
	r.SetHTMLTemplate(tmpl)

	origins := parseCorsOrigins(cfg.CORSOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/static", cfg.StaticDir)
	r.StaticFS("/assets", http.FS(views.Assets()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Use(middleware.LoadSession(h.Sessions), middleware.TrackVisits(h.Visits))

	// ----------------------------------------------------
	// Public site
	// ----------------------------------------------------
	pc := h.Public
	r.GET("/", pc.Page("user/index.html", ""))
	r.GET("/about", pc.Page("user/about.html", "About"))
	r.GET("/resume", pc.Page("user/resume.html", "Resume"))
	r.GET("/terms", pc.Page("user/terms.html", "Terms"))
	r.GET("/privacy", pc.Page("user/privacy.html", "Privacy"))
	r.GET("/experience", pc.Page("user/experience.html", "Experience"))
	r.GET("/follow-journey", pc.Page("user/follow-journey.html", "Follow the journey"))
	r.GET("/portfolio", pc.Portfolio)
	r.GET("/blog", pc.Blog)
	r.GET("/blog/:id", pc.BlogPost)
	r.GET("/contact", pc.Page("user/contact.html", "Contact"))
	r.POST("/contact", pc.SubmitContact)
	r.GET("/feedback", pc.Page("user/feedback.html", "Feedback"))
	r.POST("/feedback", pc.SubmitFeedback)
	r.GET("/download-resume", h.Resume.Download)

	// ----------------------------------------------------
	// Admin
	// ----------------------------------------------------
	r.GET("/admin/login", h.Auth.LoginPage)
	r.POST("/admin/login", h.Auth.Login)
	r.GET("/admin/logout", h.Auth.Logout)

	admin := r.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/analytics", h.Analytics.Analytics)
		admin.GET("/stream-stats", h.Analytics.StreamStats)

		admin.GET("/messages", h.Admin.Messages)
		admin.POST("/message/delete/:id", h.Admin.DeleteMessage)

		admin.GET("/notifications", h.Admin.Notifications)
		admin.POST("/notification/mark/:id", h.Admin.MarkNotification)
		admin.POST("/notification/delete/:id", h.Admin.DeleteNotification)

		admin.GET("/projects", h.Projects.List)
		admin.POST("/projects", h.Projects.Create)
		admin.POST("/project/delete/:id", h.Projects.Delete)

		admin.GET("/blogs", h.Blogs.List)
		admin.POST("/blogs", h.Blogs.Create)
		admin.POST("/blog/delete/:id", h.Blogs.Delete)

		admin.GET("/resume", h.Resume.UploadPage)
		admin.POST("/resume", h.Resume.Upload)
	}

	return r, nil
}
