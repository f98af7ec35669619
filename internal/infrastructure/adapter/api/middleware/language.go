package middleware

import (
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/locale"
	"github.com/gin-gonic/gin"
)

// LanguageCookie holds the preferred language code
const LanguageCookie = "lang"

// Language selects the dictionary for the request from the language cookie.
// Unknown codes fall back to the default language.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := locale.DefaultLanguage
		if code, err := c.Cookie(LanguageCookie); err == nil && locale.IsSupported(code) {
			lang = code
		}

		c.Set(ContextLanguageKey, lang)
		c.Next()
	}
}
