package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
)

// BaseURLContextKey guarda o prefixo usado nos URIs "type" dos problemas
const BaseURLContextKey = "base_url"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs).
// Message repete o detail traduzido: todo erro da API tem um campo "message".
type ErrorResponse struct {
	problems.Problem
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// statusByProblemType mapeia o tipo do problema para o status HTTP.
// Conflito de unicidade responde 400, como os demais erros de entrada.
var statusByProblemType = map[string]int{
	domainerrors.ProblemTypeValidation:   http.StatusBadRequest,
	domainerrors.ProblemTypeBadRequest:   http.StatusBadRequest,
	domainerrors.ProblemTypeConflict:     http.StatusBadRequest,
	domainerrors.ProblemTypeUnauthorized: http.StatusUnauthorized,
	domainerrors.ProblemTypeForbidden:    http.StatusForbidden,
	domainerrors.ProblemTypeNotFound:     http.StatusNotFound,
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString(BaseURLContextKey)
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	detail := T(c, detailKey, params...)

	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{
		Problem: *problem,
		Message: detail,
	}
}

// ErrorResponseFromError converte qualquer erro no status e corpo RFC 7807 correspondentes.
// Erros que não são DomainError viram 500 sem expor detalhes internos.
func ErrorResponseFromError(c *gin.Context, err error) (int, ErrorResponse) {
	de, ok := domainerrors.AsDomainError(err)
	if !ok {
		return http.StatusInternalServerError, InternalErrorResponseI18n(c)
	}

	status, known := statusByProblemType[de.Type]
	if !known {
		status = http.StatusInternalServerError
	}

	response := NewErrorResponseI18n(c, de.Type, de.Title, de.Message, status)

	var bindErr *BindingError
	if errors.As(err, &bindErr) {
		response.Errors = bindErr.FieldErrors(c)
	}
	return status, response
}

// RespondError escreve o erro como application/problem+json e aborta a cadeia
func RespondError(c *gin.Context, err error) {
	status, response := ErrorResponseFromError(c, err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, response)
}

// NotFoundRouteResponseI18n cria a resposta 404 de rotas inexistentes
func NotFoundRouteResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.route",
		http.StatusNotFound,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}
