package dto

import (
	"strings"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/repositories"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/services"
)

// CreateConsultationRequest representa a requisição para agendar uma consulta
type CreateConsultationRequest struct {
	PacienteID     string  `json:"paciente_id" binding:"required"`
	ProfissionalID string  `json:"profissional_id" binding:"required"`
	DataHora       string  `json:"data_hora" binding:"required,iso8601" example:"2025-01-25T14:00:00"`
	Via            string  `json:"via" binding:"required,consultation_via" enums:"presencial,teleconsulta" example:"presencial"`
	Status         string  `json:"status" example:"agendada"`
	Motivo         *string `json:"motivo" example:"retorno"`
}

func (r CreateConsultationRequest) ToInput() services.CreateConsultationInput {
	return services.CreateConsultationInput{
		PacienteID:     r.PacienteID,
		ProfissionalID: r.ProfissionalID,
		DataHora:       r.DataHora,
		Via:            r.Via,
		Status:         r.Status,
		Motivo:         r.Motivo,
	}
}

// ListConsultationsQuery são os filtros opcionais de GET /consultas
type ListConsultationsQuery struct {
	PacienteID     string `form:"paciente_id"`
	ProfissionalID string `form:"profissional_id"`
}

// ToFilters converte a query; parâmetros vazios não filtram
func (q ListConsultationsQuery) ToFilters() repositories.ConsultationFilters {
	var filters repositories.ConsultationFilters
	if id := strings.TrimSpace(q.PacienteID); id != "" {
		filters.PacienteID = &id
	}
	if id := strings.TrimSpace(q.ProfissionalID); id != "" {
		filters.ProfissionalID = &id
	}
	return filters
}

// ConsultationResponse representa uma consulta
type ConsultationResponse struct {
	ID             string  `json:"id"`
	PacienteID     string  `json:"paciente_id"`
	ProfissionalID string  `json:"profissional_id"`
	DataHora       string  `json:"data_hora"`
	Via            string  `json:"via"`
	Status         string  `json:"status"`
	Motivo         *string `json:"motivo"`
}

func ToConsultationResponse(consultation *entities.Consultation) ConsultationResponse {
	return ConsultationResponse{
		ID:             consultation.ID,
		PacienteID:     consultation.PacienteID,
		ProfissionalID: consultation.ProfissionalID,
		DataHora:       consultation.DataHora,
		Via:            string(consultation.Via),
		Status:         consultation.Status,
		Motivo:         consultation.Motivo,
	}
}

func ToConsultationResponses(consultations []*entities.Consultation) []ConsultationResponse {
	responses := make([]ConsultationResponse, len(consultations))
	for i, consultation := range consultations {
		responses[i] = ToConsultationResponse(consultation)
	}
	return responses
}
