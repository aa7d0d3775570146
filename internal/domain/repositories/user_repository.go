package repositories

import (
	"context"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários (credential store).
// Não há update/delete: usuários são criados no cadastro e apenas consultados depois.
type UserRepository interface {
	// Create retorna errors.ErrEmailAlreadyExists quando o email já existe
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
