package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/repositories"
)

// ProfessionalRepository implementa repositories.ProfessionalRepository
type ProfessionalRepository struct {
	db *gorm.DB
}

// NewProfessionalRepository cria um novo ProfessionalRepository
func NewProfessionalRepository(db *gorm.DB) repositories.ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

func (r *ProfessionalRepository) Create(ctx context.Context, professional *entities.Professional) error {
	model := &ProfessionalModel{
		ID:            professional.ID,
		Nome:          professional.Nome,
		Especialidade: professional.Especialidade,
		CreatedAt:     toNano(professional.CreatedAt),
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	professional.ID = model.ID
	professional.CreatedAt = fromNano(model.CreatedAt)
	return nil
}

func (r *ProfessionalRepository) FindByID(ctx context.Context, id string) (*entities.Professional, error) {
	var model ProfessionalModel

	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return professionalToEntity(&model), nil
}

func (r *ProfessionalRepository) List(ctx context.Context) ([]*entities.Professional, error) {
	var models []*ProfessionalModel

	if err := dbFromContext(ctx, r.db).Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	professionals := make([]*entities.Professional, 0, len(models))
	for _, model := range models {
		professionals = append(professionals, professionalToEntity(model))
	}
	return professionals, nil
}

func professionalToEntity(model *ProfessionalModel) *entities.Professional {
	return &entities.Professional{
		ID:            model.ID,
		Nome:          model.Nome,
		Especialidade: model.Especialidade,
		CreatedAt:     fromNano(model.CreatedAt),
	}
}
