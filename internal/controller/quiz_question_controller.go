package controller

import (
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type QuizQuestionController struct {
	*Renderer
	Quizzes *service.QuizService
}

func NewQuizQuestionController(r *Renderer, quizzes *service.QuizService) *QuizQuestionController {
	return &QuizQuestionController{Renderer: r, Quizzes: quizzes}
}

func (ctl *QuizQuestionController) render(c *gin.Context, code int, form service.QuizQuestionRequest, editID uint, fields util.FieldErrors) {
	questions, err := ctl.Quizzes.ListQuestions()
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	quizzes, err := ctl.Quizzes.List()
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	ctl.HTML(c, code, "admin_quiz_question.html", gin.H{
		"Questions": questions,
		"Quizzes":   quizzes,
		"Form":      form,
		"EditID":    editID,
		"Errors":    fields,
	})
}

func (ctl *QuizQuestionController) Index(c *gin.Context) {
	ctl.render(c, http.StatusOK, service.QuizQuestionRequest{}, 0, util.FieldErrors{})
}

func (ctl *QuizQuestionController) Create(c *gin.Context) {
	var req service.QuizQuestionRequest
	if err := c.ShouldBind(&req); err != nil {
		ctl.render(c, http.StatusBadRequest, req, 0, util.BindingErrors(err))
		return
	}
	if _, err := ctl.Quizzes.CreateQuestion(req); err != nil {
		var vErr *util.ValidationError
		if errors.As(err, &vErr) {
			ctl.render(c, http.StatusBadRequest, req, 0, vErr.Fields)
			return
		}
		ctl.ErrorPage(c)
		return
	}
	util.RedirectWithFlash(c, "/admin/quiz/question", "Question created.")
}

func (ctl *QuizQuestionController) EditForm(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/quiz/question", "Question not found.")
		return
	}
	question, err := ctl.Quizzes.GetQuestion(id)
	if errors.Is(err, util.ErrNotFound) {
		util.RedirectWithFlash(c, "/admin/quiz/question", "Question not found.")
		return
	}
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	form := service.QuizQuestionRequest{
		Question:   question.Question,
		QuestionEn: question.QuestionEn,
		QuizID:     question.QuizID,
	}
	ctl.render(c, http.StatusOK, form, question.ID, util.FieldErrors{})
}

func (ctl *QuizQuestionController) EditSubmit(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		util.RedirectWithFlash(c, "/admin/quiz/question", "Question not found.")
		return
	}
	var req service.QuizQuestionRequest
	if bindErr := c.ShouldBind(&req); bindErr != nil {
		ctl.render(c, http.StatusBadRequest, req, id, util.BindingErrors(bindErr))
		return
	}
	if _, err := ctl.Quizzes.UpdateQuestion(id, req); err != nil {
		var vErr *util.ValidationError
		switch {
		case errors.Is(err, util.ErrNotFound):
			util.RedirectWithFlash(c, "/admin/quiz/question", "Question not found.")
		case errors.As(err, &vErr):
			ctl.render(c, http.StatusBadRequest, req, id, vErr.Fields)
		default:
			ctl.ErrorPage(c)
		}
		return
	}
	util.RedirectWithFlash(c, "/admin/quiz/question", "Question updated.")
}

func (ctl *QuizQuestionController) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/quiz/question")
		return
	}
	deleted, err := ctl.Quizzes.DeleteQuestion(id)
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	if deleted {
		util.RedirectWithFlash(c, "/admin/quiz/question", "Question deleted.")
		return
	}
	c.Redirect(http.StatusFound, "/admin/quiz/question")
}
