package gormrepo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:nano;index"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// PatientModel é o model GORM para pacientes
type PatientModel struct {
	ID             string  `gorm:"type:varchar(36);primaryKey"`
	Nome           string  `gorm:"type:varchar(120);not null"`
	CPF            string  `gorm:"column:cpf;type:varchar(20);uniqueIndex;not null"`
	DataNascimento *string `gorm:"type:varchar(32)"`
	Telefone       *string `gorm:"type:varchar(32)"`
	CreatedAt      int64   `gorm:"autoCreateTime:nano;index"`
}

func (PatientModel) TableName() string {
	return "patients"
}

func (m *PatientModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ProfessionalModel é o model GORM para profissionais de saúde
type ProfessionalModel struct {
	ID            string  `gorm:"type:varchar(36);primaryKey"`
	Nome          string  `gorm:"type:varchar(120);not null"`
	Especialidade *string `gorm:"type:varchar(80)"`
	CreatedAt     int64   `gorm:"autoCreateTime:nano;index"`
}

func (ProfessionalModel) TableName() string {
	return "professionals"
}

func (m *ProfessionalModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ConsultationModel é o model GORM para consultas.
// As associações existem apenas para gerar as foreign keys; nunca são salvas junto.
type ConsultationModel struct {
	ID             string             `gorm:"type:varchar(36);primaryKey"`
	PacienteID     string             `gorm:"type:varchar(36);not null;index"`
	Paciente       *PatientModel      `gorm:"foreignKey:PacienteID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProfissionalID string             `gorm:"type:varchar(36);not null;index"`
	Profissional   *ProfessionalModel `gorm:"foreignKey:ProfissionalID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	DataHora       string             `gorm:"type:varchar(40);not null"`
	Via            string             `gorm:"type:varchar(20);not null"`
	Status         string             `gorm:"type:varchar(20);not null;default:'agendada'"`
	Motivo         *string            `gorm:"type:varchar(255)"`
	CreatedAt      int64              `gorm:"autoCreateTime:nano;index"`
}

func (ConsultationModel) TableName() string {
	return "consultations"
}

func (m *ConsultationModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
