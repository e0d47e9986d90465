package controllers

import (
	"net/http"

	"portfolio-site/models"
	"portfolio-site/services"
	"portfolio-site/utils"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	BlogSvc *services.BlogService
}

func NewBlogController(svc *services.BlogService) *BlogController {
	return &BlogController{BlogSvc: svc}
}

func (c *BlogController) List(ctx *gin.Context) {
	posts, err := c.BlogSvc.GetAll()
	if err != nil {
		utils.ServerError(ctx, "list blogs", err)
		return
	}
	ctx.HTML(http.StatusOK, "admin/blogs.html", gin.H{"Title": "Blogs", "Posts": posts})
}

func (c *BlogController) Create(ctx *gin.Context) {
	form, missing := requiredForm(ctx, "title", "content")
	if missing != "" {
		utils.BadRequest(ctx, "missing form field: "+missing)
		return
	}

	post := models.Blog{
		Title:   form["title"],
		Excerpt: ctx.PostForm("excerpt"),
		Content: form["content"],
		Link:    ctx.PostForm("link"),
	}
	if err := c.BlogSvc.Create(&post, optionalFile(ctx, "image")); err != nil {
		utils.ServerError(ctx, "create blog", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/admin/blogs")
}

func (c *BlogController) Delete(ctx *gin.Context) {
	if id, ok := paramID(ctx); ok {
		if err := c.BlogSvc.Delete(id); err != nil {
			utils.ServerError(ctx, "delete blog", err)
			return
		}
	}
	ctx.Redirect(http.StatusFound, "/admin/blogs")
}
