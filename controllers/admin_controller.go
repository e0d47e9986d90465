package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"portfolio-site/services"
	"portfolio-site/utils"

	"github.com/gin-gonic/gin"
)

// AdminController serves the dashboard, contact messages and feedback
// notifications.
type AdminController struct {
	MessageSvc  *services.MessageService
	FeedbackSvc *services.FeedbackService
	VisitSvc    *services.VisitService
}

func NewAdminController(msgs *services.MessageService, feedback *services.FeedbackService, visits *services.VisitService) *AdminController {
	return &AdminController{MessageSvc: msgs, FeedbackSvc: feedback, VisitSvc: visits}
}

func (c *AdminController) Dashboard(ctx *gin.Context) {
	messages, err := c.MessageSvc.GetAll()
	if err != nil {
		utils.ServerError(ctx, "list messages", err)
		return
	}
	stats, err := c.VisitSvc.Stats(time.Now())
	if err != nil {
		utils.ServerError(ctx, "visit stats", err)
		return
	}
	unread, err := c.FeedbackSvc.CountUnread()
	if err != nil {
		utils.ServerError(ctx, "count unread feedback", err)
		return
	}

	ctx.HTML(http.StatusOK, "admin/dashboard.html", gin.H{
		"Title":    "Dashboard",
		"Messages": messages,
		"Stats":    stats,
		"Unread":   unread,
	})
}

// ----------------------------------------------------
// Messages
// ----------------------------------------------------
func (c *AdminController) Messages(ctx *gin.Context) {
	messages, err := c.MessageSvc.GetAll()
	if err != nil {
		utils.ServerError(ctx, "list messages", err)
		return
	}
	ctx.HTML(http.StatusOK, "admin/messages.html", gin.H{"Title": "Messages", "Messages": messages})
}

func (c *AdminController) DeleteMessage(ctx *gin.Context) {
	if id, ok := paramID(ctx); ok {
		if err := c.MessageSvc.Delete(id); err != nil {
			utils.ServerError(ctx, "delete message", err)
			return
		}
	}
	ctx.Redirect(http.StatusFound, "/admin/messages")
}

// ----------------------------------------------------
// Notifications (feedback)
// ----------------------------------------------------
func (c *AdminController) Notifications(ctx *gin.Context) {
	feedbacks, err := c.FeedbackSvc.GetAll()
	if err != nil {
		utils.ServerError(ctx, "list feedback", err)
		return
	}
	ctx.HTML(http.StatusOK, "admin/notifications.html", gin.H{"Title": "Notifications", "Feedbacks": feedbacks})
}

func (c *AdminController) MarkNotification(ctx *gin.Context) {
	if id, ok := paramID(ctx); ok {
		isRead, err := c.FeedbackSvc.ToggleRead(id)
		switch {
		case errors.Is(err, services.ErrNotFound):
			log.Printf("⚠️ feedback %d not found", id)
		case err != nil:
			utils.ServerError(ctx, "toggle feedback", err)
			return
		default:
			log.Printf("✅ feedback %d is_read=%v", id, isRead)
		}
	}
	ctx.Redirect(http.StatusFound, "/admin/notifications")
}

func (c *AdminController) DeleteNotification(ctx *gin.Context) {
	if id, ok := paramID(ctx); ok {
		if err := c.FeedbackSvc.Delete(id); err != nil {
			utils.ServerError(ctx, "delete feedback", err)
			return
		}
	}
	ctx.Redirect(http.StatusFound, "/admin/notifications")
}
