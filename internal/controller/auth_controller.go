package controller

import (
	"cms_backend/internal/config"
	"cms_backend/internal/middleware"
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"cms_backend/pkg/logger"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AuthController drives the federated login state machine:
// Anonymous -> PendingProvider (handshake handed to the provider) ->
// Authenticated (session bound to a matched local account).
type AuthController struct {
	*Renderer
	Auth    *service.AuthService
	Config  *config.Config
	session config.SessionConfig
}

func NewAuthController(r *Renderer, auth *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{Renderer: r, Auth: auth, Config: cfg, session: cfg.Session}
}

// RegisterProviders wires the configured identity providers into goth. A
// provider that fails discovery is skipped with a warning so one broken
// entry does not take the login page down.
func RegisterProviders(cfg *config.Config) {
	for _, p := range cfg.Auth.Providers {
		callback := cfg.Server.BaseURL + "/auth/" + p.Name + "/callback"
		provider, err := openidConnect.New(p.ClientID, p.ClientSecret, callback, p.DiscoveryURL)
		if err != nil {
			logger.Log.Warn("skipping identity provider",
				zap.String("provider", p.Name), zap.Error(err))
			continue
		}
		provider.SetName(p.Name)
		goth.UseProviders(provider)
	}
}

type loginRequest struct {
	Provider   string `form:"provider" binding:"required"`
	RememberMe bool   `form:"remember_me"`
}

// ShowLogin renders the login form with the enabled providers.
func (ctl *AuthController) ShowLogin(c *gin.Context) {
	if middleware.UserFromContext(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	ctl.HTML(c, http.StatusOK, "login.html", gin.H{
		"Providers": ctl.Config.Auth.Providers,
	})
}

// BeginLogin stores the remember-me flag in the request session and hands
// control to the chosen provider.
func (ctl *AuthController) BeginLogin(c *gin.Context) {
	if middleware.UserFromContext(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		util.RedirectWithFlash(c, "/login", "Please choose a login provider.")
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionKeyRemember, req.RememberMe)
	if err := sess.Save(); err != nil {
		logger.Log.Error("failed to save remember-me flag", zap.Error(err))
	}

	// gothic resolves the provider from the query string.
	q := c.Request.URL.Query()
	q.Set("provider", req.Provider)
	c.Request.URL.RawQuery = q.Encode()
	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// Callback completes the handshake. The provider-returned email must match
// an existing local account; nothing is ever provisioned here.
func (ctl *AuthController) Callback(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Set("provider", c.Param("provider"))
	c.Request.URL.RawQuery = q.Encode()

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		logger.Log.Warn("provider handshake failed", zap.Error(err))
		util.RedirectWithFlash(c, "/login", "Invalid login. Please try again.")
		return
	}

	user, err := ctl.Auth.LoginByEmail(gothUser.Email, gothUser.NickName)
	if errors.Is(err, util.ErrInvalidLogin) {
		util.RedirectWithFlash(c, "/login", "Invalid login. Please try again.")
		return
	}
	if err != nil {
		logger.Log.Error("login failed", zap.Error(err))
		ctl.ErrorPage(c)
		return
	}

	sess := sessions.Default(c)

	// Consume the remember-me flag carried across the provider round trip.
	remember := false
	if v, ok := sess.Get(middleware.SessionKeyRemember).(bool); ok {
		remember = v
	}
	sess.Delete(middleware.SessionKeyRemember)

	maxAge := 0
	if remember {
		maxAge = ctl.session.RememberDays * 24 * 60 * 60
	}
	sess.Options(sessions.Options{Path: "/", MaxAge: maxAge, HttpOnly: true})
	sess.Set(middleware.SessionKeyUserID, user.ID)

	next, _ := sess.Get(middleware.SessionKeyNext).(string)
	sess.Delete(middleware.SessionKeyNext)

	if err := sess.Save(); err != nil {
		logger.Log.Error("failed to bind session", zap.Error(err))
		ctl.ErrorPage(c)
		return
	}

	if next == "" {
		next = "/admin/menu"
	}
	c.Redirect(http.StatusFound, next)
}

// Logout clears the session unconditionally.
func (ctl *AuthController) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	if err := sess.Save(); err != nil {
		logger.Log.Error("failed to clear session", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/")
}
