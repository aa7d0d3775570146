package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/ports"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/valueobjects"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/services"
)

func TestErrorResponseFromError_Status(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		status      int
		problemType string
		message     string
	}{
		{"validação", domainerrors.NewValidationError(domainerrors.ErrPatientRequiredFields), http.StatusBadRequest, domainerrors.ProblemTypeValidation, "nome and cpf are required"},
		{"conflito", domainerrors.NewConflictError(domainerrors.ErrCPFAlreadyExists), http.StatusBadRequest, domainerrors.ProblemTypeConflict, "CPF already registered"},
		{"não autenticado", domainerrors.NewUnauthorizedError(domainerrors.ErrTokenExpired), http.StatusUnauthorized, domainerrors.ProblemTypeUnauthorized, "Token expired"},
		{"sem permissão", domainerrors.NewForbiddenError(domainerrors.ErrForbidden), http.StatusForbidden, domainerrors.ProblemTypeForbidden, "Your role is not allowed to perform this operation"},
		{"não encontrado", domainerrors.NewNotFoundError(domainerrors.ErrPatientNotFound), http.StatusNotFound, domainerrors.ProblemTypeNotFound, "Patient not found"},
		{"erro interno", errors.New("disk full"), http.StatusInternalServerError, domainerrors.ProblemTypeInternal, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t, "")

			status, response := ErrorResponseFromError(c, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, response.Status)
			assert.Equal(t, "http://vidaplus.test"+tt.problemType, response.Type)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.message, response.Detail)
			assert.Equal(t, "/consultas", response.Instance)
		})
	}
}

func TestRespondError_WritesProblemJSON(t *testing.T) {
	c, w := newTestContext(t, "")

	RespondError(c, errors.New("boom"))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/problem+json")
	assert.Len(t, c.Errors, 1)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, w.Body.String(), "boom")
	assert.Equal(t, "An unexpected error occurred", body["message"])
}

func TestToLoginResponse(t *testing.T) {
	now := time.Date(2025, 1, 25, 14, 0, 0, 0, time.UTC)
	email, err := valueobjects.NewEmail("a@x.com")
	require.NoError(t, err)

	result := &services.LoginResult{
		Token: ports.IssuedToken{Token: "abc", ExpiresAt: now.Add(2 * time.Hour)},
		User:  &entities.User{ID: "u1", Email: email, PasswordHash: "$2a$hash", Role: entities.RolePatient},
	}

	response := ToLoginResponse(result, now)
	assert.Equal(t, "abc", response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(7200), response.ExpiresIn)
	assert.Equal(t, "a@x.com", response.User.Email)

	raw, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$hash")
}

func TestListConsultationsQuery_ToFilters(t *testing.T) {
	filters := ListConsultationsQuery{PacienteID: " p1 "}.ToFilters()
	require.NotNil(t, filters.PacienteID)
	assert.Equal(t, "p1", *filters.PacienteID)
	assert.Nil(t, filters.ProfissionalID)

	empty := ListConsultationsQuery{}.ToFilters()
	assert.Nil(t, empty.PacienteID)
	assert.Nil(t, empty.ProfissionalID)
}

func TestErrorResponse_JSONShape(t *testing.T) {
	c, _ := newTestContext(t, "")

	_, response := ErrorResponseFromError(c, domainerrors.NewNotFoundError(domainerrors.ErrPatientNotFound))
	raw, err := json.Marshal(response)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "http://vidaplus.test/problems/not-found", body["type"])
	assert.Equal(t, "Resource not found", body["title"])
	assert.Equal(t, float64(http.StatusNotFound), body["status"])
	assert.Equal(t, "Patient not found", body["detail"])
	assert.Equal(t, "/consultas", body["instance"])
	assert.Equal(t, "Patient not found", body["message"])
	assert.NotContains(t, body, "errors")
}
