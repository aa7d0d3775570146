package repositories

import (
	"context"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
)

// ConsultationRepository define a interface para persistência de consultas
type ConsultationRepository interface {
	// Create retorna errors.ErrReferenceNotFound quando paciente ou profissional não existem
	Create(ctx context.Context, consultation *entities.Consultation) error
	FindByID(ctx context.Context, id string) (*entities.Consultation, error)
	List(ctx context.Context, filters ConsultationFilters) ([]*entities.Consultation, error)
}

// ConsultationFilters contém filtros de igualdade para listagem de consultas.
// Campos nil não restringem o resultado.
type ConsultationFilters struct {
	PacienteID     *string
	ProfissionalID *string
}
