package repositories

import (
	"context"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
)

// PatientRepository define a interface para persistência de pacientes
type PatientRepository interface {
	// Create retorna errors.ErrCPFAlreadyExists quando o CPF já existe
	Create(ctx context.Context, patient *entities.Patient) error
	FindByID(ctx context.Context, id string) (*entities.Patient, error)
	FindByCPF(ctx context.Context, cpf string) (*entities.Patient, error)
	List(ctx context.Context) ([]*entities.Patient, error)
}
