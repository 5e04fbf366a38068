package controller

import (
	"cms_backend/internal/middleware"
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"cms_backend/pkg/logger"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SiteController serves the public pages: home, the language picker and the
// content pages.
type SiteController struct {
	*Renderer
	Pages *service.PageService
}

func NewSiteController(r *Renderer, pages *service.PageService) *SiteController {
	return &SiteController{Renderer: r, Pages: pages}
}

// Index renders the home page, or the language picker when the session has
// no language yet.
func (ctl *SiteController) Index(c *gin.Context) {
	if middleware.LangFromContext(c) == "" {
		ctl.HTML(c, http.StatusOK, "lang.html", gin.H{})
		return
	}

	page, err := ctl.Pages.Resolve("index")
	if err != nil && !errors.Is(err, util.ErrNotFound) {
		logger.Log.Error("failed to load home page", zap.Error(err))
	}
	if err != nil {
		page = nil
	}

	ctl.HTML(c, http.StatusOK, "index.html", gin.H{"Page": page})
}

// SetLanguage stores the chosen language in the session and goes home.
func (ctl *SiteController) SetLanguage(c *gin.Context) {
	lang := c.Param("language")
	if ctl.Tr.Supported(lang) {
		sess := sessions.Default(c)
		sess.Set(middleware.SessionKeyLang, lang)
		if err := sess.Save(); err != nil {
			logger.Log.Error("failed to save language choice", zap.Error(err))
		}
	}
	c.Redirect(http.StatusFound, "/")
}

// ShowPage renders a content page resolved by link, falling back to numeric
// id; 404 when neither matches.
func (ctl *SiteController) ShowPage(c *gin.Context) {
	page, err := ctl.Pages.Resolve(c.Param("key"))
	if errors.Is(err, util.ErrNotFound) {
		ctl.NotFoundPage(c)
		return
	}
	if err != nil {
		logger.Log.Error("failed to load page", zap.Error(err))
		ctl.ErrorPage(c)
		return
	}

	ctl.HTML(c, http.StatusOK, "page.html", gin.H{"Page": page})
}
