package dto

import (
	"time"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/services"
)

// SignupRequest representa a requisição de cadastro
type SignupRequest struct {
	Email    string `json:"email" binding:"required" example:"a@x.com"`
	Password string `json:"password" binding:"required" example:"p1"`
	Role     string `json:"role" example:"PATIENT"`
}

// ToInput converte a requisição para o input do serviço
func (r SignupRequest) ToInput() services.SignupInput {
	return services.SignupInput{
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"a@x.com"`
	Password string `json:"password" binding:"required" example:"p1"`
}

func (r LoginRequest) ToInput() services.LoginInput {
	return services.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// UserResponse é a projeção pública de um usuário; nunca inclui o hash da senha
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SignupResponse representa a resposta do cadastro
type SignupResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse representa a resposta do login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// ToLoginResponse monta a resposta do login; expires_in é relativo a now
func ToLoginResponse(result *services.LoginResult, now time.Time) LoginResponse {
	expiresIn := int64(result.Token.ExpiresAt.Sub(now).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}

	return LoginResponse{
		AccessToken: result.Token.Token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		ExpiresAt:   result.Token.ExpiresAt,
		User:        ToUserResponse(result.User),
	}
}
