package controllers

import (
	"net/http"

	"portfolio-site/models"
	"portfolio-site/services"
	"portfolio-site/utils"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectSvc *services.ProjectService
}

func NewProjectController(svc *services.ProjectService) *ProjectController {
	return &ProjectController{ProjectSvc: svc}
}

func (c *ProjectController) List(ctx *gin.Context) {
	projects, err := c.ProjectSvc.GetAll()
	if err != nil {
		utils.ServerError(ctx, "list projects", err)
		return
	}
	ctx.HTML(http.StatusOK, "admin/projects.html", gin.H{"Title": "Projects", "Projects": projects})
}

// ----------------------------------------------------
// POST /admin/projects (multipart, optional "image")
// ----------------------------------------------------
func (c *ProjectController) Create(ctx *gin.Context) {
	form, missing := requiredForm(ctx, "title", "description", "link")
	if missing != "" {
		utils.BadRequest(ctx, "missing form field: "+missing)
		return
	}

	project := models.Project{
		Title:       form["title"],
		Description: form["description"],
		Link:        form["link"],
	}
	if err := c.ProjectSvc.Create(&project, optionalFile(ctx, "image")); err != nil {
		utils.ServerError(ctx, "create project", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/admin/projects")
}

func (c *ProjectController) Delete(ctx *gin.Context) {
	if id, ok := paramID(ctx); ok {
		if err := c.ProjectSvc.Delete(id); err != nil {
			utils.ServerError(ctx, "delete project", err)
			return
		}
	}
	ctx.Redirect(http.StatusFound, "/admin/projects")
}
