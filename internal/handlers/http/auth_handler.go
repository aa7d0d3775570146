package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/dto"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/services"
)

// AuthHandler lida com cadastro e login
type AuthHandler struct {
	authService *services.AuthService
	now         func() time.Time
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		now:         time.Now,
	}
}

// Signup cadastra um novo usuário
//
//	@Summary		Cadastrar usuário
//	@Description	Cria um usuário com senha em hash. role é opcional (padrão PATIENT). email precisa ter formato válido (ex.: a@x.com).
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupRequest	true	"Dados de cadastro"
//	@Success		201		{object}	dto.SignupResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := dto.BindJSON(c, &req, domainerrors.ErrCredentialsRequired); err != nil {
		dto.RespondError(c, err)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{
		Message: dto.T(c, "message.user_created"),
		User:    dto.ToUserResponse(user),
	})
}

// Login autentica e devolve um token de acesso
//
//	@Summary		Login
//	@Description	Email desconhecido e senha errada retornam o mesmo erro 401.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequest	true	"Credenciais"
//	@Success		200		{object}	dto.LoginResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := dto.BindJSON(c, &req, domainerrors.ErrCredentialsRequired); err != nil {
		dto.RespondError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(result, h.now()))
}
