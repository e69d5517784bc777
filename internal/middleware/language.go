package middleware

import (
	"taskflow/internal/respond"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware passes Accept-Language through to the translator, falling back to fallback.
func LanguageMiddleware(fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = fallback
		}
		respond.SetLang(c, lang)
		c.Next()
	}
}
