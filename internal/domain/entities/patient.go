package entities

import (
	"strings"
	"time"

	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
)

// Patient representa um paciente: dados básicos necessários para atendimento.
// O CPF é tratado como identificador opaco e único.
type Patient struct {
	ID             string
	Nome           string
	CPF            string
	DataNascimento *string
	Telefone       *string
	CreatedAt      time.Time
}

// Normalize remove espaços supérfluos dos campos obrigatórios
func (p *Patient) Normalize() {
	p.Nome = strings.TrimSpace(p.Nome)
	p.CPF = strings.TrimSpace(p.CPF)
}

// Validate valida regras de negócio da entidade Patient
func (p *Patient) Validate() error {
	if p.Nome == "" || p.CPF == "" {
		return domainerrors.ErrPatientRequiredFields
	}
	return nil
}
