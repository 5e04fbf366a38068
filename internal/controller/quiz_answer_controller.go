package controller

import (
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type QuizAnswerController struct {
	*Renderer
	Quizzes *service.QuizService
}

func NewQuizAnswerController(r *Renderer, quizzes *service.QuizService) *QuizAnswerController {
	return &QuizAnswerController{Renderer: r, Quizzes: quizzes}
}

func (ctl *QuizAnswerController) render(c *gin.Context, code int, form service.AnswerOptionRequest, editID uint, fields util.FieldErrors) {
	options, err := ctl.Quizzes.ListAnswerOptions()
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	questions, err := ctl.Quizzes.ListQuestions()
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	ctl.HTML(c, code, "admin_quiz_answer.html", gin.H{
		"Options":   options,
		"Questions": questions,
		"Form":      form,
		"EditID":    editID,
		"Errors":    fields,
	})
}

func (ctl *QuizAnswerController) Index(c *gin.Context) {
	ctl.render(c, http.StatusOK, service.AnswerOptionRequest{}, 0, util.FieldErrors{})
}

func (ctl *QuizAnswerController) Create(c *gin.Context) {
	var req service.AnswerOptionRequest
	if err := c.ShouldBind(&req); err != nil {
		ctl.render(c, http.StatusBadRequest, req, 0, util.BindingErrors(err))
		return
	}
	if _, err := ctl.Quizzes.CreateAnswerOption(req); err != nil {
		var vErr *util.ValidationError
		if errors.As(err, &vErr) {
			ctl.render(c, http.StatusBadRequest, req, 0, vErr.Fields)
			return
		}
		ctl.ErrorPage(c)
		return
	}
	util.RedirectWithFlash(c, "/admin/quiz/answer", "Answer option created.")
}

func (ctl *QuizAnswerController) EditForm(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/quiz/answer", "Answer option not found.")
		return
	}
	option, err := ctl.Quizzes.GetAnswerOption(id)
	if errors.Is(err, util.ErrNotFound) {
		util.RedirectWithFlash(c, "/admin/quiz/answer", "Answer option not found.")
		return
	}
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	form := service.AnswerOptionRequest{
		Answer:         option.Answer,
		AnswerEn:       option.AnswerEn,
		QuizQuestionID: option.QuizQuestionID,
	}
	ctl.render(c, http.StatusOK, form, option.ID, util.FieldErrors{})
}

func (ctl *QuizAnswerController) EditSubmit(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/quiz/answer", "Answer option not found.")
		return
	}
	var req service.AnswerOptionRequest
	if bindErr := c.ShouldBind(&req); bindErr != nil {
		ctl.render(c, http.StatusBadRequest, req, id, util.BindingErrors(bindErr))
		return
	}
	if _, err := ctl.Quizzes.UpdateAnswerOption(id, req); err != nil {
		var vErr *util.ValidationError
		switch {
		case errors.Is(err, util.ErrNotFound):
			util.RedirectWithFlash(c, "/admin/quiz/answer", "Answer option not found.")
		case errors.As(err, &vErr):
			ctl.render(c, http.StatusBadRequest, req, id, vErr.Fields)
		default:
			ctl.ErrorPage(c)
		}
		return
	}
	util.RedirectWithFlash(c, "/admin/quiz/answer", "Answer option updated.")
}

func (ctl *QuizAnswerController) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/quiz/answer")
		return
	}
	deleted, err := ctl.Quizzes.DeleteAnswerOption(id)
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	if deleted {
		util.RedirectWithFlash(c, "/admin/quiz/answer", "Answer option deleted.")
		return
	}
	c.Redirect(http.StatusFound, "/admin/quiz/answer")
}
