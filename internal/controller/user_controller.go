package controller

import (
	"cms_backend/internal/middleware"
	"cms_backend/internal/service"
	"cms_backend/internal/util"
	"cms_backend/pkg/logger"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type UserController struct {
	*Renderer
	Users *service.UserService
}

func NewUserController(r *Renderer, users *service.UserService) *UserController {
	return &UserController{Renderer: r, Users: users}
}

// Profile renders a public profile page. Unknown nicknames flash a notice
// and go home instead of serving an error.
func (ctl *UserController) Profile(c *gin.Context) {
	nickname := c.Param("nickname")
	user, err := ctl.Users.GetByNickname(nickname)
	if errors.Is(err, util.ErrNotFound) {
		util.RedirectWithFlash(c, "/", fmt.Sprintf("User %s not found.", nickname))
		return
	}
	if err != nil {
		logger.Log.Error("failed to load profile", zap.Error(err))
		ctl.ErrorPage(c)
		return
	}

	ctl.HTML(c, http.StatusOK, "user.html", gin.H{"Profile": user})
}

// EditForm renders the self-edit form prefilled with the current nickname.
func (ctl *UserController) EditForm(c *gin.Context) {
	user := middleware.UserFromContext(c)
	ctl.HTML(c, http.StatusOK, "user_edit.html", gin.H{
		"Form":   service.NicknameRequest{Nickname: user.Nickname},
		"Errors": util.FieldErrors{},
	})
}

// EditSubmit renames the current user. Validation failures re-render the
// form with field messages and persist nothing.
func (ctl *UserController) EditSubmit(c *gin.Context) {
	user := middleware.UserFromContext(c)

	var req service.NicknameRequest
	if err := c.ShouldBind(&req); err != nil {
		ctl.HTML(c, http.StatusOK, "user_edit.html", gin.H{
			"Form":   req,
			"Errors": util.BindingErrors(err),
		})
		return
	}

	err := ctl.Users.UpdateNickname(user, req.Nickname)
	var verr *util.ValidationError
	if errors.As(err, &verr) {
		ctl.HTML(c, http.StatusOK, "user_edit.html", gin.H{
			"Form":   req,
			"Errors": verr.Fields,
		})
		return
	}
	if err != nil {
		logger.Log.Error("failed to rename user", zap.Error(err))
		ctl.ErrorPage(c)
		return
	}

	util.RedirectWithFlash(c, "/user/edit", "Your changes have been saved.")
}
