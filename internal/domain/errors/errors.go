package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrEmailAlreadyExists   = errors.New("error.email_already_exists")
	ErrCPFAlreadyExists     = errors.New("error.cpf_already_exists")
	ErrInvalidCredentials   = errors.New("error.invalid_credentials")
	ErrForbidden            = errors.New("error.forbidden")
	ErrPatientNotFound      = errors.New("error.patient_not_found")
	ErrProfessionalNotFound = errors.New("error.professional_not_found")
	ErrConsultationNotFound = errors.New("error.consultation_not_found")
	ErrReferenceNotFound    = errors.New("error.reference_not_found")
)

// Authentication errors
var (
	ErrMissingAuthHeader   = errors.New("error.auth.missing_header")
	ErrMalformedAuthHeader = errors.New("error.auth.malformed_header")
	ErrTokenExpired        = errors.New("error.auth.token_expired")
	ErrTokenInvalid        = errors.New("error.auth.token_invalid")
	ErrAuthUserNotFound    = errors.New("error.auth.user_not_found")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidEmail               = errors.New("error.invalid_email")
	ErrInvalidRequestBody         = errors.New("error.invalid_request_body")
	ErrCredentialsRequired        = errors.New("error.credentials_required")
	ErrPasswordTooLong            = errors.New("error.password_too_long")
	ErrPatientRequiredFields      = errors.New("error.patient_required_fields")
	ErrProfessionalRequiredFields = errors.New("error.professional_required_fields")
	ErrConsultationRequiredFields = errors.New("error.consultation_required_fields")
	ErrInvalidVia                 = errors.New("error.invalid_via")
	ErrInvalidDataHora            = errors.New("error.invalid_data_hora")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional.
// Title e Message são message IDs de i18n; Err é o sentinel original.
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func newDomainError(problemType, title string, err error) *DomainError {
	return &DomainError{
		Type:    problemType,
		Title:   title,
		Message: err.Error(),
		Err:     err,
	}
}

// NewValidationError envolve um erro de campo ausente ou malformado (400)
func NewValidationError(err error) *DomainError {
	return newDomainError(ProblemTypeValidation, "error.validation.title", err)
}

// NewConflictError envolve uma violação de unicidade (400)
func NewConflictError(err error) *DomainError {
	return newDomainError(ProblemTypeConflict, "error.conflict.title", err)
}

// NewNotFoundError envolve uma referência inexistente (404)
func NewNotFoundError(err error) *DomainError {
	return newDomainError(ProblemTypeNotFound, "error.not_found.title", err)
}

// NewUnauthorizedError envolve uma falha de autenticação (401)
func NewUnauthorizedError(err error) *DomainError {
	return newDomainError(ProblemTypeUnauthorized, "error.unauthorized.title", err)
}

// NewForbiddenError envolve uma falta de permissão (403)
func NewForbiddenError(err error) *DomainError {
	return newDomainError(ProblemTypeForbidden, "error.forbidden.title", err)
}

// AsDomainError extrai um *DomainError da cadeia de erros
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
