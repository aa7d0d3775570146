package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/logging"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/persistence/gormrepo"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/security"
)

type testEnv struct {
	db            *gorm.DB
	auth          *AuthService
	patients      *PatientService
	professionals *ProfessionalService
	consultations *ConsultationService
	tokens        *security.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gormrepo.NewInMemoryDatabase("services_" + name)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	log := logging.NewNopLogger()
	uow := gormrepo.NewUnitOfWork(db)
	userRepo := gormrepo.NewUserRepository(db)
	patientRepo := gormrepo.NewPatientRepository(db)
	professionalRepo := gormrepo.NewProfessionalRepository(db)
	consultationRepo := gormrepo.NewConsultationRepository(db)
	tokens := security.NewJWTService("segredo-de-teste", "vidaplus", 2*time.Hour, nil)

	return &testEnv{
		db:            db,
		auth:          NewAuthService(userRepo, security.NewBcryptHasher(bcrypt.MinCost), tokens, uow, log),
		patients:      NewPatientService(patientRepo, uow, log),
		professionals: NewProfessionalService(professionalRepo, log),
		consultations: NewConsultationService(consultationRepo, patientRepo, professionalRepo, uow, log),
		tokens:        tokens,
	}
}

// actor é o usuário autenticado usado nas operações protegidas
func (e *testEnv) actor(t *testing.T) *entities.User {
	t.Helper()
	user, err := e.auth.Signup(t.Context(), SignupInput{Email: "actor@x.com", Password: "p1"})
	require.NoError(t, err)
	return user
}

func requireProblem(t *testing.T, err error, problemType string, sentinel error) {
	t.Helper()
	require.Error(t, err)
	de, ok := domainerrors.AsDomainError(err)
	require.True(t, ok, "expected DomainError, got %T: %v", err, err)
	require.Equal(t, problemType, de.Type)
	require.ErrorIs(t, err, sentinel)
}

func strPtr(s string) *string {
	return &s
}
