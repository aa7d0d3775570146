package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/i18n"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Accept-Language header
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.match(c.Query("lang"))

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(i18n.LanguageContextKey, lang)
		c.Set(i18n.ServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

// parseAcceptLanguage retorna o primeiro idioma do header que tenha catálogo.
// Exemplo: "pt-PT,pt;q=0.9,en;q=0.8" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	for _, lang := range strings.Split(acceptLang, ",") {
		// Remover peso (;q=0.9) se existir
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if match := m.match(lang); match != "" {
			return match
		}
	}
	return ""
}

// match resolve um idioma pedido para um catálogo: exato (sem diferenciar caixa),
// depois pela língua base (pt, pt-PT -> pt-BR; en-US -> en)
func (m *I18nMiddleware) match(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || lang == "*" {
		return ""
	}

	supported := m.i18nService.GetSupportedLanguages()
	for _, s := range supported {
		if strings.EqualFold(s, lang) {
			return s
		}
	}

	base := baseLanguage(lang)
	for _, s := range supported {
		if strings.EqualFold(baseLanguage(s), base) {
			return s
		}
	}
	return ""
}

func baseLanguage(lang string) string {
	if idx := strings.Index(lang, "-"); idx != -1 {
		return lang[:idx]
	}
	return lang
}
