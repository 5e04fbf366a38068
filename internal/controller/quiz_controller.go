package controller

import (
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type QuizController struct {
	*Renderer
	Quizzes *service.QuizService
}

func NewQuizController(r *Renderer, quizzes *service.QuizService) *QuizController {
	return &QuizController{Renderer: r, Quizzes: quizzes}
}

func (ctl *QuizController) render(c *gin.Context, code int, form service.QuizRequest, editID uint, fields util.FieldErrors) {
	quizzes, err := ctl.Quizzes.List()
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	ctl.HTML(c, code, "admin_quiz.html", gin.H{
		"Quizzes": quizzes,
		"Form":    form,
		"EditID":  editID,
		"Errors":  fields,
	})
}

func (ctl *QuizController) Index(c *gin.Context) {
	ctl.render(c, http.StatusOK, service.QuizRequest{}, 0, util.FieldErrors{})
}

func (ctl *QuizController) Create(c *gin.Context) {
	var req service.QuizRequest
	if err := c.ShouldBind(&req); err != nil {
		ctl.render(c, http.StatusBadRequest, req, 0, util.BindingErrors(err))
		return
	}
	if _, err := ctl.Quizzes.Create(req); err != nil {
		var vErr *util.ValidationError
		if errors.As(err, &vErr) {
			ctl.render(c, http.StatusBadRequest, req, 0, vErr.Fields)
			return
		}
		ctl.ErrorPage(c)
		return
	}
	util.RedirectWithFlash(c, "/admin/quiz", "Quiz created.")
}

func (ctl *QuizController) EditForm(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/quiz", "Quiz not found.")
		return
	}
	quiz, err := ctl.Quizzes.Get(id)
	if errors.Is(err, util.ErrNotFound) {
		util.RedirectWithFlash(c, "/admin/quiz", "Quiz not found.")
		return
	}
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	form := service.QuizRequest{Name: quiz.Name, NameEn: quiz.NameEn}
	ctl.render(c, http.StatusOK, form, quiz.ID, util.FieldErrors{})
}

func (ctl *QuizController) EditSubmit(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/quiz", "Quiz not found.")
		return
	}
	var req service.QuizRequest
	if bindErr := c.ShouldBind(&req); bindErr != nil {
		ctl.render(c, http.StatusBadRequest, req, id, util.BindingErrors(bindErr))
		return
	}
	if _, err := ctl.Quizzes.Update(id, req); err != nil {
		var vErr *util.ValidationError
		switch {
		case errors.Is(err, util.ErrNotFound):
			util.RedirectWithFlash(c, "/admin/quiz", "Quiz not found.")
		case errors.As(err, &vErr):
			ctl.render(c, http.StatusBadRequest, req, id, vErr.Fields)
		default:
			ctl.ErrorPage(c)
		}
		return
	}
	util.RedirectWithFlash(c, "/admin/quiz", "Quiz updated.")
}

func (ctl *QuizController) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/quiz")
		return
	}
	deleted, err := ctl.Quizzes.Delete(id)
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	if deleted {
		util.RedirectWithFlash(c, "/admin/quiz", "Quiz deleted.")
		return
	}
	c.Redirect(http.StatusFound, "/admin/quiz")
}
