package middleware

import (
	"cms_backend/internal/model"
	"cms_backend/internal/repository"
	"cms_backend/pkg/logger"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CurrentUser resolves the session-bound account, if any, into the request
// context. A stale session (user row since removed) is cleared silently.
func CurrentUser(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		raw := sess.Get(SessionKeyUserID)
		if raw == nil {
			c.Next()
			return
		}

		id, ok := raw.(uint)
		if !ok {
			c.Next()
			return
		}

		user, err := users.FindByID(id)
		if err != nil {
			sess.Delete(SessionKeyUserID)
			if err := sess.Save(); err != nil {
				logger.Log.Error("failed to clear stale session", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// RequireLogin guards the admin routes. Anonymous visitors are sent to the
// login page with the originally requested path preserved in the session.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFromContext(c) == nil {
			sess := sessions.Default(c)
			sess.Set(SessionKeyNext, c.Request.URL.RequestURI())
			if err := sess.Save(); err != nil {
				logger.Log.Error("failed to save requested path", zap.Error(err))
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserFromContext returns the authenticated user, or nil when anonymous.
func UserFromContext(c *gin.Context) *model.User {
	if v, exists := c.Get(ContextUser); exists {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}
