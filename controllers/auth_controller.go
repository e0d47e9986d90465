package controllers

import (
	"errors"
	"net/http"

	"portfolio-site/middleware"
	"portfolio-site/services"
	"portfolio-site/utils"

	"github.com/gin-gonic/gin"
)

const loginFailedMessage = "Invalid username or password."

type AuthController struct {
	AuthSvc  *services.AuthService
	Sessions *services.SessionManager
}

func NewAuthController(svc *services.AuthService, sessions *services.SessionManager) *AuthController {
	return &AuthController{AuthSvc: svc, Sessions: sessions}
}

func (c *AuthController) LoginPage(ctx *gin.Context) {
	if middleware.CurrentSession(ctx).Authenticated() {
		ctx.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	ctx.HTML(http.StatusOK, "admin/login.html", gin.H{"Title": "Login"})
}

// ----------------------------------------------------
// POST /admin/login
// ----------------------------------------------------
func (c *AuthController) Login(ctx *gin.Context) {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")

	admin, err := c.AuthSvc.Authenticate(username, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		ctx.HTML(http.StatusOK, "admin/login.html", gin.H{
			"Title":    "Login",
			"Error":    loginFailedMessage,
			"Username": username,
		})
		return
	}
	if err != nil {
		utils.ServerError(ctx, "authenticate", err)
		return
	}

	if err := c.Sessions.Save(ctx, &services.Session{AdminID: admin.ID}); err != nil {
		utils.ServerError(ctx, "save session", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/admin/dashboard")
}

func (c *AuthController) Logout(ctx *gin.Context) {
	c.Sessions.Clear(ctx)
	ctx.Redirect(http.StatusFound, "/admin/login")
}
