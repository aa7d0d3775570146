package dto

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
)

var registerOnce sync.Once

// RegisterValidators registra no validator do gin os nomes JSON dos campos
// e as tags consultation_via e iso8601. Pode ser chamada mais de uma vez.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding engine is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		if err = v.RegisterValidation("consultation_via", func(fl validator.FieldLevel) bool {
			return entities.Via(fl.Field().String()).IsValid()
		}); err != nil {
			return
		}

		err = v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
			return entities.IsValidDataHora(fl.Field().String())
		})
	})
	return err
}

// tagErrors associa tags de validação ao erro de domínio correspondente
var tagErrors = map[string]error{
	"email":            domainerrors.ErrInvalidEmail,
	"consultation_via": domainerrors.ErrInvalidVia,
	"iso8601":          domainerrors.ErrInvalidDataHora,
}

// BindingError é uma falha de validação do corpo com a lista de campos rejeitados
type BindingError struct {
	domain *domainerrors.DomainError
	fields validator.ValidationErrors
}

func (e *BindingError) Error() string {
	return e.domain.Error()
}

func (e *BindingError) Unwrap() error {
	return e.domain
}

// FieldErrors traduz os erros de campo para o idioma da requisição
func (e *BindingError) FieldErrors(c *gin.Context) []ValidationError {
	result := make([]ValidationError, 0, len(e.fields))
	for _, fe := range e.fields {
		key := "error.validation.field." + fe.Tag()
		message := T(c, key, map[string]interface{}{"Field": fe.Field()})
		if message == key {
			message = T(c, "error.validation.field.invalid", map[string]interface{}{"Field": fe.Field()})
		}

		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: message,
			Tag:     fe.Tag(),
		})
	}
	return result
}

// BindJSON faz o bind e a validação do corpo JSON.
// Qualquer campo obrigatório ausente resulta em requiredErr; corpo malformado em ErrInvalidRequestBody.
func BindJSON(c *gin.Context, req interface{}, requiredErr error) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	switch {
	case errors.As(err, &fields):
		return &BindingError{
			domain: domainerrors.NewValidationError(sentinelFor(fields, requiredErr)),
			fields: fields,
		}
	case errors.Is(err, io.EOF):
		// corpo vazio equivale a todos os campos ausentes
		return domainerrors.NewValidationError(requiredErr)
	default:
		return domainerrors.NewValidationError(domainerrors.ErrInvalidRequestBody)
	}
}

func sentinelFor(fields validator.ValidationErrors, requiredErr error) error {
	for _, fe := range fields {
		if fe.Tag() == "required" {
			return requiredErr
		}
	}
	for _, fe := range fields {
		if err, ok := tagErrors[fe.Tag()]; ok {
			return err
		}
	}
	return domainerrors.ErrInvalidRequestBody
}
