package controller

import (
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type SubmenuController struct {
	*Renderer
	Submenus *service.SubmenuService
}

func NewSubmenuController(r *Renderer, submenus *service.SubmenuService) *SubmenuController {
	return &SubmenuController{Renderer: r, Submenus: submenus}
}

func (ctl *SubmenuController) render(c *gin.Context, code int, form service.SubmenuRequest, editID uint, fields util.FieldErrors) {
	submenus, err := ctl.Submenus.List()
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	parents, err := ctl.Submenus.ParentChoices()
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	ctl.HTML(c, code, "admin_submenu.html", gin.H{
		"Submenus": submenus,
		"Parents":  parents,
		"Form":     form,
		"EditID":   editID,
		"Errors":   fields,
	})
}

func (ctl *SubmenuController) Index(c *gin.Context) {
	ctl.render(c, http.StatusOK, service.SubmenuRequest{}, 0, util.FieldErrors{})
}

func (ctl *SubmenuController) Create(c *gin.Context) {
	var req service.SubmenuRequest
	if err := c.ShouldBind(&req); err != nil {
		ctl.render(c, http.StatusBadRequest, req, 0, util.BindingErrors(err))
		return
	}
	if _, err := ctl.Submenus.Create(req); err != nil {
		var vErr *util.ValidationError
		if errors.As(err, &vErr) {
			ctl.render(c, http.StatusBadRequest, req, 0, vErr.Fields)
			return
		}
		ctl.ErrorPage(c)
		return
	}
	util.RedirectWithFlash(c, "/admin/submenu", "Submenu entry created.")
}

func (ctl *SubmenuController) EditForm(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/submenu", "Submenu entry not found.")
		return
	}
	submenu, err := ctl.Submenus.Get(id)
	if errors.Is(err, util.ErrNotFound) {
		util.RedirectWithFlash(c, "/admin/submenu", "Submenu entry not found.")
		return
	}
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	form := service.SubmenuRequest{
		Sequence:  submenu.Sequence,
		Link:      submenu.Link,
		Caption:   submenu.Caption,
		CaptionEn: submenu.CaptionEn,
		MenuID:    submenu.MenuID,
	}
	ctl.render(c, http.StatusOK, form, submenu.ID, util.FieldErrors{})
}

func (ctl *SubmenuController) EditSubmit(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/submenu", "Submenu entry not found.")
		return
	}
	var req service.SubmenuRequest
	if bindErr := c.ShouldBind(&req); bindErr != nil {
		ctl.render(c, http.StatusBadRequest, req, id, util.BindingErrors(bindErr))
		return
	}
	if _, err := ctl.Submenus.Update(id, req); err != nil {
		var vErr *util.ValidationError
		switch {
		case errors.Is(err, util.ErrNotFound):
			util.RedirectWithFlash(c, "/admin/submenu", "Submenu entry not found.")
		case errors.As(err, &vErr):
			ctl.render(c, http.StatusBadRequest, req, id, vErr.Fields)
		default:
			ctl.ErrorPage(c)
		}
		return
	}
	util.RedirectWithFlash(c, "/admin/submenu", "Submenu entry updated.")
}

func (ctl *SubmenuController) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/submenu")
		return
	}
	deleted, err := ctl.Submenus.Delete(id)
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	if deleted {
		util.RedirectWithFlash(c, "/admin/submenu", "Submenu entry deleted.")
		return
	}
	c.Redirect(http.StatusFound, "/admin/submenu")
}
