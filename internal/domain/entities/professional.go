package entities

import (
	"strings"
	"time"

	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
)

// Professional representa um profissional de saúde (médico, enfermeiro, etc.)
type Professional struct {
	ID            string
	Nome          string
	Especialidade *string
	CreatedAt     time.Time
}

// Validate valida regras de negócio da entidade Professional
func (p *Professional) Validate() error {
	p.Nome = strings.TrimSpace(p.Nome)
	if p.Nome == "" {
		return domainerrors.ErrProfessionalRequiredFields
	}
	return nil
}
