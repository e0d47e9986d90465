package controllers

import (
	"log"
	"net/http"
	"os"

	"portfolio-site/services"
	"portfolio-site/utils"

	"github.com/gin-gonic/gin"
)

type ResumeController struct {
	Files *services.FileStore
}

func NewResumeController(files *services.FileStore) *ResumeController {
	return &ResumeController{Files: files}
}

func (c *ResumeController) hasResume() bool {
	_, err := os.Stat(c.Files.ResumePath())
	return err == nil
}

func (c *ResumeController) UploadPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "admin/resume_upload.html", gin.H{"Title": "Resume", "HasResume": c.hasResume()})
}

// Upload overwrites the single resume file.
func (c *ResumeController) Upload(ctx *gin.Context) {
	fh, err := ctx.FormFile("resume")
	if err != nil {
		utils.BadRequest(ctx, "missing file: resume")
		return
	}
	if err := c.Files.SaveResume(fh); err != nil {
		utils.ServerError(ctx, "save resume", err)
		return
	}
	log.Printf("✅ Resume replaced (%d bytes)", fh.Size)
	ctx.Redirect(http.StatusFound, "/admin/resume")
}

// Download serves the resume as an attachment.
func (c *ResumeController) Download(ctx *gin.Context) {
	if !c.hasResume() {
		ctx.String(http.StatusNotFound, "resume not found")
		return
	}
	ctx.FileAttachment(c.Files.ResumePath(), services.ResumeFilename)
}
