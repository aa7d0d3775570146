package repositories

import (
	"context"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
)

// ProfessionalRepository define a interface para persistência de profissionais
type ProfessionalRepository interface {
	Create(ctx context.Context, professional *entities.Professional) error
	FindByID(ctx context.Context, id string) (*entities.Professional, error)
	List(ctx context.Context) ([]*entities.Professional, error)
}
