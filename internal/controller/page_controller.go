package controller

import (
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"cms_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type PageController struct {
	*Renderer
	Pages   *service.PageService
	Storage *service.StorageService
}

func NewPageController(r *Renderer, pages *service.PageService, storage *service.StorageService) *PageController {
	return &PageController{Renderer: r, Pages: pages, Storage: storage}
}

func (ctl *PageController) render(c *gin.Context, code int, form service.PageRequest, editID uint, fields util.FieldErrors) {
	pages, err := ctl.Pages.List()
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	ctl.HTML(c, code, "admin_page.html", gin.H{
		"Pages":  pages,
		"Form":   form,
		"EditID": editID,
		"Errors": fields,
	})
}

func (ctl *PageController) Index(c *gin.Context) {
	ctl.render(c, http.StatusOK, service.PageRequest{}, 0, util.FieldErrors{})
}

func (ctl *PageController) Create(c *gin.Context) {
	var req service.PageRequest
	if err := c.ShouldBind(&req); err != nil {
		ctl.render(c, http.StatusBadRequest, req, 0, util.BindingErrors(err))
		return
	}
	if _, err := ctl.Pages.Create(req); err != nil {
		var vErr *util.ValidationError
		if errors.As(err, &vErr) {
			ctl.render(c, http.StatusBadRequest, req, 0, vErr.Fields)
			return
		}
		ctl.ErrorPage(c)
		return
	}
	util.RedirectWithFlash(c, "/admin/page", "Page created.")
}

func (ctl *PageController) EditForm(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/page", "Page not found.")
		return
	}
	page, err := ctl.Pages.Get(id)
	if errors.Is(err, util.ErrNotFound) {
		util.RedirectWithFlash(c, "/admin/page", "Page not found.")
		return
	}
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	form := service.PageRequest{
		Link:      page.Link,
		Title:     page.Title,
		TitleEn:   page.TitleEn,
		Content:   page.Content,
		ContentEn: page.ContentEn,
		ImgName:   page.ImgName,
	}
	ctl.render(c, http.StatusOK, form, page.ID, util.FieldErrors{})
}

func (ctl *PageController) EditSubmit(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/page", "Page not found.")
		return
	}
	var req service.PageRequest
	if bindErr := c.ShouldBind(&req); bindErr != nil {
		ctl.render(c, http.StatusBadRequest, req, id, util.BindingErrors(bindErr))
		return
	}
	if _, err := ctl.Pages.Update(id, req); err != nil {
		var vErr *util.ValidationError
		switch {
		case errors.Is(err, util.ErrNotFound):
			util.RedirectWithFlash(c, "/admin/page", "Page not found.")
		case errors.As(err, &vErr):
			ctl.render(c, http.StatusBadRequest, req, id, vErr.Fields)
		default:
			ctl.ErrorPage(c)
		}
		return
	}
	util.RedirectWithFlash(c, "/admin/page", "Page updated.")
}

func (ctl *PageController) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/page")
		return
	}
	deleted, err := ctl.Pages.Delete(id)
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	if deleted {
		util.RedirectWithFlash(c, "/admin/page", "Page deleted.")
		return
	}
	c.Redirect(http.StatusFound, "/admin/page")
}

// Upload stores a page illustration and returns the generated filename so
// the admin form can reference it.
func (ctl *PageController) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image file"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	filename, url, err := ctl.Storage.UploadImage(c.Request.Context(), header.Filename, file, header.Size, contentType)
	if err != nil {
		logger.Log.Error("image upload failed", zap.String("file", header.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"filename": filename, "url": url})
}
