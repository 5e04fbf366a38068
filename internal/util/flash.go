package util

import (
	"cms_backend/pkg/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Flash queues a one-shot notice shown on the next rendered page.
func Flash(c *gin.Context, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(message)
	if err := sess.Save(); err != nil {
		logger.Log.Error("failed to save session flash", zap.Error(err))
	}
}

// Flashes drains and returns the queued notices.
func Flashes(c *gin.Context) []string {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) > 0 {
		if err := sess.Save(); err != nil {
			logger.Log.Error("failed to clear session flashes", zap.Error(err))
		}
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

// RedirectWithFlash queues a notice and redirects.
func RedirectWithFlash(c *gin.Context, location, message string) {
	Flash(c, message)
	c.Redirect(302, location)
}
