package controller

import (
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type MenuController struct {
	*Renderer
	Menus *service.MenuService
}

func NewMenuController(r *Renderer, menus *service.MenuService) *MenuController {
	return &MenuController{Renderer: r, Menus: menus}
}

func (ctl *MenuController) render(c *gin.Context, code int, form service.MenuRequest, editID uint, fields util.FieldErrors) {
	menus, err := ctl.Menus.List()
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	ctl.HTML(c, code, "admin_menu.html", gin.H{
		"Menus":  menus,
		"Form":   form,
		"EditID": editID,
		"Errors": fields,
	})
}

func (ctl *MenuController) Index(c *gin.Context) {
	ctl.render(c, http.StatusOK, service.MenuRequest{}, 0, util.FieldErrors{})
}

func (ctl *MenuController) Create(c *gin.Context) {
	var req service.MenuRequest
	if err := c.ShouldBind(&req); err != nil {
		ctl.render(c, http.StatusBadRequest, req, 0, util.BindingErrors(err))
		return
	}
	if _, err := ctl.Menus.Create(req); err != nil {
		var vErr *util.ValidationError
		if errors.As(err, &vErr) {
			ctl.render(c, http.StatusBadRequest, req, 0, vErr.Fields)
			return
		}
		ctl.ErrorPage(c)
		return
	}
	util.RedirectWithFlash(c, "/admin/menu", "Menu entry created.")
}

func (ctl *MenuController) EditForm(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/menu", "Menu entry not found.")
		return
	}
	menu, err := ctl.Menus.Get(id)
	if errors.Is(err, util.ErrNotFound) {
		util.RedirectWithFlash(c, "/admin/menu", "Menu entry not found.")
		return
	}
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	form := service.MenuRequest{
		Sequence:  menu.Sequence,
		Link:      menu.Link,
		Type:      menu.Type,
		Caption:   menu.Caption,
		CaptionEn: menu.CaptionEn,
	}
	ctl.render(c, http.StatusOK, form, menu.ID, util.FieldErrors{})
}

func (ctl *MenuController) EditSubmit(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/menu", "Menu entry not found.")
		return
	}
	var req service.MenuRequest
	if bindErr := c.ShouldBind(&req); bindErr != nil {
		ctl.render(c, http.StatusBadRequest, req, id, util.BindingErrors(bindErr))
		return
	}
	if _, err := ctl.Menus.Update(id, req); err != nil {
		var vErr *util.ValidationError
		switch {
		case errors.Is(err, util.ErrNotFound):
			util.RedirectWithFlash(c, "/admin/menu", "Menu entry not found.")
		case errors.As(err, &vErr):
			ctl.render(c, http.StatusBadRequest, req, id, vErr.Fields)
		default:
			ctl.ErrorPage(c)
		}
		return
	}
	util.RedirectWithFlash(c, "/admin/menu", "Menu entry updated.")
}

func (ctl *MenuController) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/menu")
		return
	}
	deleted, err := ctl.Menus.Delete(id)
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	if deleted {
		util.RedirectWithFlash(c, "/admin/menu", "Menu entry deleted.")
		return
	}
	c.Redirect(http.StatusFound, "/admin/menu")
}
