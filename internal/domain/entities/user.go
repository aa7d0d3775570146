package entities

import (
	"errors"
	"time"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/valueobjects"
)

// User representa um usuário do sistema (identidade + credencial).
// PasswordHash nunca deve sair da camada de serviço.
type User struct {
	ID           string
	Email        valueobjects.Email
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// GetPermissions retorna todas as permissões do usuário
func (u *User) GetPermissions() []string {
	perms := u.Role.GetPermissions()
	result := make([]string, len(perms))
	for i, p := range perms {
		result[i] = string(p)
	}
	return result
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	if u.Role == "" {
		return errors.New("role is required")
	}

	return nil
}
