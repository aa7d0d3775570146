package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/repositories"
)

// ConsultationRepository implementa repositories.ConsultationRepository
type ConsultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository cria um novo ConsultationRepository
func NewConsultationRepository(db *gorm.DB) repositories.ConsultationRepository {
	return &ConsultationRepository{db: db}
}

func (r *ConsultationRepository) Create(ctx context.Context, consultation *entities.Consultation) error {
	model := &ConsultationModel{
		ID:             consultation.ID,
		PacienteID:     consultation.PacienteID,
		ProfissionalID: consultation.ProfissionalID,
		DataHora:       consultation.DataHora,
		Via:            string(consultation.Via),
		Status:         consultation.Status,
		Motivo:         consultation.Motivo,
		CreatedAt:      toNano(consultation.CreatedAt),
	}

	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domainerrors.ErrReferenceNotFound
		}
		return err
	}

	consultation.ID = model.ID
	consultation.Status = model.Status
	consultation.CreatedAt = fromNano(model.CreatedAt)
	return nil
}

func (r *ConsultationRepository) FindByID(ctx context.Context, id string) (*entities.Consultation, error) {
	var model ConsultationModel

	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return consultationToEntity(&model), nil
}

func (r *ConsultationRepository) List(ctx context.Context, filters repositories.ConsultationFilters) ([]*entities.Consultation, error) {
	var models []*ConsultationModel

	query := dbFromContext(ctx, r.db).Model(&ConsultationModel{})

	// Aplicar filtros
	if filters.PacienteID != nil {
		query = query.Where("paciente_id = ?", *filters.PacienteID)
	}
	if filters.ProfissionalID != nil {
		query = query.Where("profissional_id = ?", *filters.ProfissionalID)
	}

	if err := query.Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	consultations := make([]*entities.Consultation, 0, len(models))
	for _, model := range models {
		consultations = append(consultations, consultationToEntity(model))
	}
	return consultations, nil
}

func consultationToEntity(model *ConsultationModel) *entities.Consultation {
	return &entities.Consultation{
		ID:             model.ID,
		PacienteID:     model.PacienteID,
		ProfissionalID: model.ProfissionalID,
		DataHora:       model.DataHora,
		Via:            entities.Via(model.Via),
		Status:         model.Status,
		Motivo:         model.Motivo,
		CreatedAt:      fromNano(model.CreatedAt),
	}
}
