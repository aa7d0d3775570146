package dto

import (
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/services"
)

// CreatePatientRequest representa a requisição para cadastrar um paciente
type CreatePatientRequest struct {
	Nome           string  `json:"nome" binding:"required" example:"Ana"`
	CPF            string  `json:"cpf" binding:"required" example:"111.111.111-11"`
	DataNascimento *string `json:"data_nascimento" example:"1990-05-10"`
	Telefone       *string `json:"telefone" example:"+55 11 99999-9999"`
}

func (r CreatePatientRequest) ToInput() services.CreatePatientInput {
	return services.CreatePatientInput{
		Nome:           r.Nome,
		CPF:            r.CPF,
		DataNascimento: r.DataNascimento,
		Telefone:       r.Telefone,
	}
}

// PatientResponse representa um paciente; campos opcionais saem como null
type PatientResponse struct {
	ID             string  `json:"id"`
	Nome           string  `json:"nome"`
	CPF            string  `json:"cpf"`
	DataNascimento *string `json:"data_nascimento"`
	Telefone       *string `json:"telefone"`
}

func ToPatientResponse(patient *entities.Patient) PatientResponse {
	return PatientResponse{
		ID:             patient.ID,
		Nome:           patient.Nome,
		CPF:            patient.CPF,
		DataNascimento: patient.DataNascimento,
		Telefone:       patient.Telefone,
	}
}

// ToPatientResponses converte uma lista; lista vazia serializa como []
func ToPatientResponses(patients []*entities.Patient) []PatientResponse {
	responses := make([]PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = ToPatientResponse(patient)
	}
	return responses
}
