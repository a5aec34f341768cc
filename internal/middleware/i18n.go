// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/atelier-backend/internal/i18n"
)

// I18nMiddleware picks the response language from ?lang= or
// Accept-Language, falling back to the configured default.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := parseLanguage(c.Query("lang"))
		if lang == "" {
			lang = parseLanguage(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = i18n.DefaultLanguage()
		}

		// Set language in context
		c.Set("lang", lang)
		c.Next()
	}
}

// parseLanguage handles values like "fa-IR,fa;q=0.9,en;q=0.8".
func parseLanguage(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.Split(part, ";")[0]))
		base := strings.SplitN(strings.ReplaceAll(tag, "_", "-"), "-", 2)[0]
		switch base {
		case "fa", "per", "fas":
			return i18n.LangPersian
		case "en":
			return i18n.LangEnglish
		}
	}
	return ""
}
