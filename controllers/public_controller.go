package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"portfolio-site/models"
	"portfolio-site/services"
	"portfolio-site/utils"

	"github.com/gin-gonic/gin"
)

// PublicController serves the visitor-facing pages and forms.
type PublicController struct {
	ProjectSvc  *services.ProjectService
	BlogSvc     *services.BlogService
	MessageSvc  *services.MessageService
	FeedbackSvc *services.FeedbackService
}

func NewPublicController(
	projects *services.ProjectService,
	blogs *services.BlogService,
	msgs *services.MessageService,
	feedback *services.FeedbackService,
) *PublicController {
	return &PublicController{ProjectSvc: projects, BlogSvc: blogs, MessageSvc: msgs, FeedbackSvc: feedback}
}

// Page renders a static template.
func (c *PublicController) Page(name, title string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, name, gin.H{"Title": title})
	}
}

func (c *PublicController) Portfolio(ctx *gin.Context) {
	projects, err := c.ProjectSvc.GetAll()
	if err != nil {
		utils.ServerError(ctx, "list projects", err)
		return
	}
	ctx.HTML(http.StatusOK, "user/portfolio.html", gin.H{"Title": "Portfolio", "Projects": projects})
}

// ----------------------------------------------------
// Blog
// ----------------------------------------------------
func (c *PublicController) Blog(ctx *gin.Context) {
	posts, err := c.BlogSvc.GetAll()
	if err != nil {
		utils.ServerError(ctx, "list blogs", err)
		return
	}
	ctx.HTML(http.StatusOK, "user/blog.html", gin.H{"Title": "Blog", "Posts": posts})
}

func (c *PublicController) BlogPost(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/blog")
		return
	}

	post, err := c.BlogSvc.GetByID(id)
	if errors.Is(err, services.ErrNotFound) {
		ctx.Redirect(http.StatusFound, "/blog")
		return
	}
	if err != nil {
		utils.ServerError(ctx, "get blog", err)
		return
	}
	ctx.HTML(http.StatusOK, "user/blog_post.html", gin.H{"Title": post.Title, "Post": post})
}

// ----------------------------------------------------
// Contact
// ----------------------------------------------------
func (c *PublicController) SubmitContact(ctx *gin.Context) {
	form, missing := requiredForm(ctx, "name", "email", "phone", "message")
	if missing != "" {
		utils.BadRequest(ctx, "missing form field: "+missing)
		return
	}

	msg := models.Message{
		Name:    form["name"],
		Email:   form["email"],
		Phone:   form["phone"],
		Message: form["message"],
	}
	if err := c.MessageSvc.Create(&msg); err != nil {
		utils.ServerError(ctx, "create message", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/contact")
}

// ----------------------------------------------------
// Feedback
// ----------------------------------------------------
func (c *PublicController) SubmitFeedback(ctx *gin.Context) {
	form, missing := requiredForm(ctx, "name", "email")
	if missing != "" {
		utils.BadRequest(ctx, "missing form field: "+missing)
		return
	}

	rating, err := parseRating(ctx.PostForm("rating"))
	if err != nil {
		utils.BadRequest(ctx, "rating must be a number")
		return
	}

	fb := models.Feedback{
		Name:    form["name"],
		Email:   form["email"],
		Rating:  rating,
		Message: ctx.PostForm("message"),
		Notify:  ctx.PostForm("notify") == "1",
	}
	if err := c.FeedbackSvc.Create(&fb); err != nil {
		utils.ServerError(ctx, "create feedback", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/feedback")
}

// parseRating defaults an empty value to DefaultFeedbackRating. The range is
// not checked.
func parseRating(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.DefaultFeedbackRating, nil
	}
	return strconv.Atoi(raw)
}
