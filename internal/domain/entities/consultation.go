package entities

import (
	"strings"
	"time"

	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
)

// Via representa a modalidade da consulta
type Via string

const (
	ViaPresencial   Via = "presencial"
	ViaTeleconsulta Via = "teleconsulta"
)

// DefaultConsultationStatus é o status de uma consulta recém-criada sem status explícito
const DefaultConsultationStatus = "agendada"

// dataHoraLayouts são os formatos ISO-8601 aceitos em data_hora
var dataHoraLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// IsValid verifica se a via é uma das modalidades aceitas
func (v Via) IsValid() bool {
	return v == ViaPresencial || v == ViaTeleconsulta
}

// IsValidDataHora verifica se o valor é uma data/hora ISO-8601 aceita
func IsValidDataHora(value string) bool {
	for _, layout := range dataHoraLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// Consultation representa uma consulta entre paciente e profissional.
// DataHora é mantida como recebida (string ISO-8601).
type Consultation struct {
	ID             string
	PacienteID     string
	ProfissionalID string
	DataHora       string
	Via            Via
	Status         string
	Motivo         *string
	CreatedAt      time.Time
}

// ApplyDefaults preenche o status padrão quando ausente
func (c *Consultation) ApplyDefaults() {
	c.Status = strings.TrimSpace(c.Status)
	if c.Status == "" {
		c.Status = DefaultConsultationStatus
	}
}

// Validate valida regras de negócio da entidade Consultation
func (c *Consultation) Validate() error {
	if c.PacienteID == "" || c.ProfissionalID == "" || c.DataHora == "" || c.Via == "" {
		return domainerrors.ErrConsultationRequiredFields
	}

	if !c.Via.IsValid() {
		return domainerrors.ErrInvalidVia
	}

	if !IsValidDataHora(c.DataHora) {
		return domainerrors.ErrInvalidDataHora
	}

	return nil
}
