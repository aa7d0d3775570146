package services

import (
	"context"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/ports"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/repositories"
)

// ProfessionalService contém a lógica de negócio para profissionais de saúde
type ProfessionalService struct {
	professionalRepo repositories.ProfessionalRepository
	logger           ports.Logger
}

// NewProfessionalService cria um novo ProfessionalService
func NewProfessionalService(
	professionalRepo repositories.ProfessionalRepository,
	logger ports.Logger,
) *ProfessionalService {
	return &ProfessionalService{
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// CreateProfessionalInput representa os dados para criar um profissional
type CreateProfessionalInput struct {
	Nome          string
	Especialidade *string
}

func (s *ProfessionalService) CreateProfessional(ctx context.Context, actor *entities.User, input CreateProfessionalInput) (*entities.Professional, error) {
	professional := &entities.Professional{
		Nome:          input.Nome,
		Especialidade: input.Especialidade,
	}
	if err := professional.Validate(); err != nil {
		return nil, domainerrors.NewValidationError(err)
	}

	if err := s.professionalRepo.Create(ctx, professional); err != nil {
		s.logger.Error("failed to create professional", "actor_id", actor.ID, "error", err)
		return nil, err
	}

	s.logger.Info("professional created", "actor_id", actor.ID, "professional_id", professional.ID)
	return professional, nil
}

func (s *ProfessionalService) ListProfessionals(ctx context.Context, actor *entities.User) ([]*entities.Professional, error) {
	s.logger.Debug("listing professionals", "actor_id", actor.ID)
	return s.professionalRepo.List(ctx)
}

func (s *ProfessionalService) GetProfessional(ctx context.Context, actor *entities.User, id string) (*entities.Professional, error) {
	professional, err := s.professionalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, domainerrors.NewNotFoundError(domainerrors.ErrProfessionalNotFound)
	}

	s.logger.Debug("professional fetched", "actor_id", actor.ID, "professional_id", id)
	return professional, nil
}
