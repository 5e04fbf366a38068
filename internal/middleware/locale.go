package middleware

import (
	"cms_backend/internal/i18n"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Locale puts the session-selected language into the request context. When
// no supported language has been chosen yet the context value stays empty;
// the home page reacts to that by showing the language picker, everything
// else falls back to the default locale.
func Locale(tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if lang, ok := sess.Get(SessionKeyLang).(string); ok && tr.Supported(lang) {
			c.Set(ContextLang, lang)
		}
		c.Next()
	}
}

// LangFromContext returns the selected language code, or "" when none is
// chosen yet.
func LangFromContext(c *gin.Context) string {
	if v, exists := c.Get(ContextLang); exists {
		if lang, ok := v.(string); ok {
			return lang
		}
	}
	return ""
}
