package middleware

import (
	"taskflow/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

var (
	supportedLanguages = []string{translator.LanguageEn, translator.LanguageFr}
	languageMatcher    = language.NewMatcher([]language.Tag{language.English, language.French})
)

// LanguageMiddleware negotiates the response language from Accept-Language, defaulting to English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return matchLanguage(c.GetHeader("Accept-Language"))
}

func matchLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return translator.LanguageEn
	}
	return supportedLanguages[index]
}
