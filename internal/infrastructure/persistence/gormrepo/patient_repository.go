package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/repositories"
)

// PatientRepository implementa repositories.PatientRepository
type PatientRepository struct {
	db *gorm.DB
}

// NewPatientRepository cria um novo PatientRepository
func NewPatientRepository(db *gorm.DB) repositories.PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	model := &PatientModel{
		ID:             patient.ID,
		Nome:           patient.Nome,
		CPF:            patient.CPF,
		DataNascimento: patient.DataNascimento,
		Telefone:       patient.Telefone,
		CreatedAt:      toNano(patient.CreatedAt),
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrCPFAlreadyExists
		}
		return err
	}

	patient.ID = model.ID
	patient.CreatedAt = fromNano(model.CreatedAt)
	return nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id string) (*entities.Patient, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *PatientRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Patient, error) {
	return r.findOne(ctx, "cpf = ?", cpf)
}

func (r *PatientRepository) List(ctx context.Context) ([]*entities.Patient, error) {
	var models []*PatientModel

	if err := dbFromContext(ctx, r.db).Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	patients := make([]*entities.Patient, 0, len(models))
	for _, model := range models {
		patients = append(patients, patientToEntity(model))
	}
	return patients, nil
}

func (r *PatientRepository) findOne(ctx context.Context, query string, arg string) (*entities.Patient, error) {
	var model PatientModel

	if err := dbFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return patientToEntity(&model), nil
}

func patientToEntity(model *PatientModel) *entities.Patient {
	return &entities.Patient{
		ID:             model.ID,
		Nome:           model.Nome,
		CPF:            model.CPF,
		DataNascimento: model.DataNascimento,
		Telefone:       model.Telefone,
		CreatedAt:      fromNano(model.CreatedAt),
	}
}
