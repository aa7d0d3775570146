package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/ports"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/repositories"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/valueobjects"
)

// AuthService contém a lógica de cadastro, login e resolução de identidade
type AuthService struct {
	userRepo  repositories.UserRepository
	hasher    ports.PasswordHasher
	tokens    ports.TokenService
	uow       ports.UnitOfWork
	logger    ports.Logger
	dummyHash string
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AuthService {
	// hash usado quando o email não existe, para que login leve o mesmo tempo nos dois casos
	dummyHash, err := hasher.Hash("vidaplus-dummy-password")
	if err != nil {
		logger.Warn("failed to precompute dummy hash", "error", err)
	}

	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		uow:       uow,
		logger:    logger,
		dummyHash: dummyHash,
	}
}

// SignupInput representa os dados de cadastro
type SignupInput struct {
	Email    string
	Password string
	Role     string
}

// LoginInput representa as credenciais de login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult é o token emitido junto com o usuário autenticado
type LoginResult struct {
	Token ports.IssuedToken
	User  *entities.User
}

// Signup cria um novo usuário com senha em hash. Role ausente vira PATIENT.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*entities.User, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.NewValidationError(domainerrors.ErrCredentialsRequired)
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, domainerrors.NewValidationError(err)
	}

	role := entities.Role(strings.TrimSpace(input.Role))
	if role == "" {
		role = entities.DefaultRole
	}
	if !role.IsKnown() {
		s.logger.Warn("signup with unknown role", "email", email.String(), "role", role)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPasswordTooLong) {
			return nil, domainerrors.NewValidationError(err)
		}
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.userRepo.FindByEmail(txCtx, email.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return domainerrors.ErrEmailAlreadyExists
		}
		return s.userRepo.Create(txCtx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			return nil, domainerrors.NewConflictError(err)
		}
		s.logger.Error("failed to create user", "email", email.String(), "error", err)
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login valida as credenciais e emite um token.
// Email desconhecido e senha errada retornam o mesmo erro.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.NewValidationError(domainerrors.ErrCredentialsRequired)
	}

	invalid := domainerrors.NewUnauthorizedError(domainerrors.ErrInvalidCredentials)

	var user *entities.User
	if email, err := valueobjects.NewEmail(input.Email); err == nil {
		user, err = s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
	}

	if user == nil {
		_, _ = s.hasher.Compare(s.dummyHash, input.Password)
		s.logger.Info("login failed", "reason", "unknown email")
		return nil, invalid
	}

	ok, err := s.hasher.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Info("login failed", "reason", "password mismatch", "user_id", user.ID)
		return nil, invalid
	}

	issued, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &LoginResult{Token: issued, User: user}, nil
}

// Authenticate verifica o token e resolve o usuário que ele representa
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domainerrors.NewUnauthorizedError(err)
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.NewUnauthorizedError(domainerrors.ErrAuthUserNotFound)
	}

	return user, nil
}
