package dto

import (
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/services"
)

// CreateProfessionalRequest representa a requisição para cadastrar um profissional
type CreateProfessionalRequest struct {
	Nome          string  `json:"nome" binding:"required" example:"Dr. Carlos"`
	Especialidade *string `json:"especialidade" example:"Cardiologia"`
}

func (r CreateProfessionalRequest) ToInput() services.CreateProfessionalInput {
	return services.CreateProfessionalInput{
		Nome:          r.Nome,
		Especialidade: r.Especialidade,
	}
}

// ProfessionalResponse representa um profissional de saúde
type ProfessionalResponse struct {
	ID            string  `json:"id"`
	Nome          string  `json:"nome"`
	Especialidade *string `json:"especialidade"`
}

func ToProfessionalResponse(professional *entities.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ID:            professional.ID,
		Nome:          professional.Nome,
		Especialidade: professional.Especialidade,
	}
}

func ToProfessionalResponses(professionals []*entities.Professional) []ProfessionalResponse {
	responses := make([]ProfessionalResponse, len(professionals))
	for i, professional := range professionals {
		responses[i] = ToProfessionalResponse(professional)
	}
	return responses
}
