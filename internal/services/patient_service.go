package services

import (
	"context"
	"errors"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/ports"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/repositories"
)

// PatientService contém a lógica de negócio para pacientes
type PatientService struct {
	patientRepo repositories.PatientRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewPatientService cria um novo PatientService
func NewPatientService(
	patientRepo repositories.PatientRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		uow:         uow,
		logger:      logger,
	}
}

// CreatePatientInput representa os dados para criar um paciente
type CreatePatientInput struct {
	Nome           string
	CPF            string
	DataNascimento *string
	Telefone       *string
}

// CreatePatient cadastra um paciente; CPF repetido é conflito
func (s *PatientService) CreatePatient(ctx context.Context, actor *entities.User, input CreatePatientInput) (*entities.Patient, error) {
	patient := &entities.Patient{
		Nome:           input.Nome,
		CPF:            input.CPF,
		DataNascimento: input.DataNascimento,
		Telefone:       input.Telefone,
	}
	patient.Normalize()
	if err := patient.Validate(); err != nil {
		return nil, domainerrors.NewValidationError(err)
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.patientRepo.FindByCPF(txCtx, patient.CPF)
		if err != nil {
			return err
		}
		if existing != nil {
			return domainerrors.ErrCPFAlreadyExists
		}
		return s.patientRepo.Create(txCtx, patient)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrCPFAlreadyExists) {
			return nil, domainerrors.NewConflictError(err)
		}
		s.logger.Error("failed to create patient", "actor_id", actor.ID, "error", err)
		return nil, err
	}

	s.logger.Info("patient created", "actor_id", actor.ID, "patient_id", patient.ID)
	return patient, nil
}

// ListPatients lista todos os pacientes em ordem de cadastro
func (s *PatientService) ListPatients(ctx context.Context, actor *entities.User) ([]*entities.Patient, error) {
	s.logger.Debug("listing patients", "actor_id", actor.ID)
	return s.patientRepo.List(ctx)
}

// GetPatient busca um paciente por ID
func (s *PatientService) GetPatient(ctx context.Context, actor *entities.User, id string) (*entities.Patient, error) {
	patient, err := s.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domainerrors.NewNotFoundError(domainerrors.ErrPatientNotFound)
	}

	s.logger.Debug("patient fetched", "actor_id", actor.ID, "patient_id", id)
	return patient, nil
}
