package ports

import (
	"time"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
)

// PasswordHasher gera e compara hashes de senha (unidirecionais, com salt)
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare retorna false, nil quando a senha não confere
	Compare(hash, password string) (bool, error)
}

// IssuedToken é um token assinado com sua expiração absoluta
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenClaims é a identidade extraída de um token válido
type TokenClaims struct {
	UserID string
	Email  string
	Role   entities.Role
}

// TokenService emite e verifica tokens de identidade.
// Verify retorna errors.ErrTokenExpired para tokens vencidos e
// errors.ErrTokenInvalid para qualquer outra falha.
type TokenService interface {
	Issue(user *entities.User) (IssuedToken, error)
	Verify(token string) (*TokenClaims, error)
}
