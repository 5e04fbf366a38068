package controller

import (
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// PollController serves the public quiz form and the cumulative results
// chart shown after a submission.
type PollController struct {
	*Renderer
	Polls *service.PollService
}

func NewPollController(r *Renderer, polls *service.PollService) *PollController {
	return &PollController{Renderer: r, Polls: polls}
}

// Show renders the quiz form. The key is a quiz name with numeric id
// fallback.
func (ctl *PollController) Show(c *gin.Context) {
	quiz, err := ctl.Polls.Resolve(c.Param("name"))
	if errors.Is(err, util.ErrNotFound) {
		ctl.NotFoundPage(c)
		return
	}
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	ctl.HTML(c, http.StatusOK, "quiz.html", gin.H{"Quiz": quiz})
}

// Submit records one anonymous submission and renders the cumulative chart.
// A rejected submission re-renders the form with a flash so nothing the
// visitor chose is silently half-recorded.
func (ctl *PollController) Submit(c *gin.Context) {
	quiz, err := ctl.Polls.Resolve(c.Param("name"))
	if errors.Is(err, util.ErrNotFound) {
		ctl.NotFoundPage(c)
		return
	}
	if err != nil {
		ctl.ErrorPage(c)
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		ctl.ErrorPage(c)
		return
	}
	payload := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}

	lang := ctl.Lang(c)
	if err := ctl.Polls.Submit(payload); err != nil {
		var message string
		switch {
		case errors.Is(err, util.ErrEmptySubmission):
			message = ctl.Tr.T(lang, "fill_all_answers")
		case errors.Is(err, util.ErrMalformedSubmission):
			message = ctl.Tr.T(lang, "answers_rejected")
		default:
			ctl.ErrorPage(c)
			return
		}
		util.Flash(c, message)
		ctl.HTML(c, http.StatusBadRequest, "quiz.html", gin.H{"Quiz": quiz})
		return
	}

	tallies, err := ctl.Polls.Tally(quiz)
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	matrix, err := json.Marshal(service.CountMatrix(tallies))
	if err != nil {
		ctl.ErrorPage(c)
		return
	}
	ctl.HTML(c, http.StatusOK, "chart.html", gin.H{
		"Quiz":       quiz,
		"Tallies":    tallies,
		"CountsJSON": template.JS(matrix),
	})
}
