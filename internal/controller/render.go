package controller

import (
	"cms_backend/internal/i18n"
	"cms_backend/internal/middleware"
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"cms_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Renderer assembles the view data every template needs: the navigation,
// the locale string table, the current user and any queued flash notices.
// Controllers embed it and add their own entries on top.
type Renderer struct {
	Nav *service.NavigationService
	Tr  *i18n.Translator
}

func NewRenderer(nav *service.NavigationService, tr *i18n.Translator) *Renderer {
	return &Renderer{Nav: nav, Tr: tr}
}

// Lang returns the effective language for the request: the session choice,
// or the default locale when none was made yet.
func (r *Renderer) Lang(c *gin.Context) string {
	if lang := middleware.LangFromContext(c); lang != "" {
		return lang
	}
	return r.Tr.Default()
}

func (r *Renderer) HTML(c *gin.Context, code int, name string, data gin.H) {
	lang := r.Lang(c)

	menu, err := r.Nav.Build()
	if err != nil {
		logger.Log.Error("failed to assemble navigation", zap.Error(err))
	}

	base := gin.H{
		"Const":   r.Tr.Table(lang),
		"Lang":    lang,
		"Menu":    menu,
		"User":    middleware.UserFromContext(c),
		"Flashes": util.Flashes(c),
	}
	for k, v := range data {
		base[k] = v
	}
	c.HTML(code, name, base)
}

// NotFoundPage renders the public 404 page.
func (r *Renderer) NotFoundPage(c *gin.Context) {
	r.HTML(c, http.StatusNotFound, "404.html", gin.H{})
}

// ErrorPage renders the 500 page. Any open transaction was already rolled
// back at the persistence boundary before the error propagated here.
func (r *Renderer) ErrorPage(c *gin.Context) {
	r.HTML(c, http.StatusInternalServerError, "500.html", gin.H{})
}
