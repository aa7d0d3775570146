package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/i18n"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.validation.field.required", map[string]interface{}{"Field": "cpf"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service, ok := i18nService(c)
	if !ok {
		// Fallback: retornar a chave se serviço não estiver disponível
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(i18n.LanguageContextKey); lang != "" {
		return lang
	}

	if service, ok := i18nService(c); ok {
		return service.GetDefaultLanguage()
	}
	return "pt-BR"
}

func i18nService(c *gin.Context) (*i18n.Service, bool) {
	value, exists := c.Get(i18n.ServiceContextKey)
	if !exists {
		return nil, false
	}

	service, ok := value.(*i18n.Service)
	return service, ok
}
