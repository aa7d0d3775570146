package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/ports"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/repositories"
)

// ConsultationService contém a lógica de negócio para consultas
type ConsultationService struct {
	consultationRepo repositories.ConsultationRepository
	patientRepo      repositories.PatientRepository
	professionalRepo repositories.ProfessionalRepository
	uow              ports.UnitOfWork
	logger           ports.Logger
}

// NewConsultationService cria um novo ConsultationService
func NewConsultationService(
	consultationRepo repositories.ConsultationRepository,
	patientRepo repositories.PatientRepository,
	professionalRepo repositories.ProfessionalRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ConsultationService {
	return &ConsultationService{
		consultationRepo: consultationRepo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		uow:              uow,
		logger:           logger,
	}
}

// CreateConsultationInput representa os dados para agendar uma consulta
type CreateConsultationInput struct {
	PacienteID     string
	ProfissionalID string
	DataHora       string
	Via            string
	Status         string
	Motivo         *string
}

// CreateConsultation agenda uma consulta. Paciente e profissional precisam existir;
// as buscas e o insert acontecem na mesma transação.
func (s *ConsultationService) CreateConsultation(ctx context.Context, actor *entities.User, input CreateConsultationInput) (*entities.Consultation, error) {
	consultation := &entities.Consultation{
		PacienteID:     strings.TrimSpace(input.PacienteID),
		ProfissionalID: strings.TrimSpace(input.ProfissionalID),
		DataHora:       strings.TrimSpace(input.DataHora),
		Via:            entities.Via(strings.TrimSpace(input.Via)),
		Status:         input.Status,
		Motivo:         input.Motivo,
	}
	consultation.ApplyDefaults()
	if err := consultation.Validate(); err != nil {
		return nil, domainerrors.NewValidationError(err)
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		patient, err := s.patientRepo.FindByID(txCtx, consultation.PacienteID)
		if err != nil {
			return err
		}
		if patient == nil {
			return domainerrors.NewNotFoundError(domainerrors.ErrPatientNotFound)
		}

		professional, err := s.professionalRepo.FindByID(txCtx, consultation.ProfissionalID)
		if err != nil {
			return err
		}
		if professional == nil {
			return domainerrors.NewNotFoundError(domainerrors.ErrProfessionalNotFound)
		}

		return s.consultationRepo.Create(txCtx, consultation)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrReferenceNotFound) {
			return nil, domainerrors.NewNotFoundError(err)
		}
		if _, ok := domainerrors.AsDomainError(err); !ok {
			s.logger.Error("failed to create consultation", "actor_id", actor.ID, "error", err)
		}
		return nil, err
	}

	s.logger.Info("consultation created",
		"actor_id", actor.ID,
		"consultation_id", consultation.ID,
		"paciente_id", consultation.PacienteID,
		"profissional_id", consultation.ProfissionalID,
	)
	return consultation, nil
}

// ListConsultations lista consultas, opcionalmente filtradas por paciente e/ou profissional
func (s *ConsultationService) ListConsultations(ctx context.Context, actor *entities.User, filters repositories.ConsultationFilters) ([]*entities.Consultation, error) {
	s.logger.Debug("listing consultations", "actor_id", actor.ID)
	return s.consultationRepo.List(ctx, filters)
}

func (s *ConsultationService) GetConsultation(ctx context.Context, actor *entities.User, id string) (*entities.Consultation, error) {
	consultation, err := s.consultationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, domainerrors.NewNotFoundError(domainerrors.ErrConsultationNotFound)
	}

	s.logger.Debug("consultation fetched", "actor_id", actor.ID, "consultation_id", id)
	return consultation, nil
}
