package routes

import (
	"portfolio-site/config"
	"portfolio-site/controllers"
	"portfolio-site/services"
	"portfolio-site/utils"

	"gorm.io/gorm"
)

// Handlers is everything SetupRouter mounts.
type Handlers struct {
	Public    *controllers.PublicController
	Auth      *controllers.AuthController
	Admin     *controllers.AdminController
	Projects  *controllers.ProjectController
	Blogs     *controllers.BlogController
	Analytics *controllers.AnalyticsController
	Resume    *controllers.ResumeController

	Sessions *services.SessionManager
	Visits   *services.VisitService
	Files    *services.FileStore
}

// NewHandlers wires services and controllers on top of db.
func NewHandlers(cfg *config.Config, db *gorm.DB) *Handlers {
	files := services.NewFileStore(cfg.ProjectsDir(), cfg.BlogsDir(), cfg.ResumeDir())
	notifier := services.NewEmailNotifier(utils.NewMailer(cfg.SMTP), cfg.AdminAlertEmail, cfg.SendAdminAlerts)
	sessions := services.NewSessionManager(cfg.SecretKey, cfg.SecureCookies)

	authSvc := services.NewAuthService(db)
	messageSvc := services.NewMessageService(db, notifier)
	feedbackSvc := services.NewFeedbackService(db, notifier)
	projectSvc := services.NewProjectService(db, files)
	blogSvc := services.NewBlogService(db, files)
	visitSvc := services.NewVisitService(db)

	return &Handlers{
		Public:    controllers.NewPublicController(projectSvc, blogSvc, messageSvc, feedbackSvc),
		Auth:      controllers.NewAuthController(authSvc, sessions),
		Admin:     controllers.NewAdminController(messageSvc, feedbackSvc, visitSvc),
		Projects:  controllers.NewProjectController(projectSvc),
		Blogs:     controllers.NewBlogController(blogSvc),
		Analytics: controllers.NewAnalyticsController(visitSvc),
		Resume:    controllers.NewResumeController(files),

		Sessions: sessions,
		Visits:   visitSvc,
		Files:    files,
	}
}
