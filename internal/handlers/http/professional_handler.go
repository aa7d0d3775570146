package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/dto"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/services"
)

// ProfessionalHandler lida com requisições HTTP de profissionais de saúde
type ProfessionalHandler struct {
	professionalService *services.ProfessionalService
}

func NewProfessionalHandler(professionalService *services.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalService: professionalService,
	}
}

// CreateProfessional cadastra um profissional
//
//	@Summary	Cadastrar profissional
//	@Tags		profissionais
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateProfessionalRequest	true	"Dados do profissional"
//	@Success	201		{object}	dto.ProfessionalResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/profissionais [post]
func (h *ProfessionalHandler) CreateProfessional(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.CreateProfessionalRequest
	if err := dto.BindJSON(c, &req, domainerrors.ErrProfessionalRequiredFields); err != nil {
		dto.RespondError(c, err)
		return
	}

	professional, err := h.professionalService.CreateProfessional(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfessionalResponse(professional))
}

// ListProfessionals lista todos os profissionais
//
//	@Summary	Listar profissionais
//	@Tags		profissionais
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.ProfessionalResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/profissionais [get]
func (h *ProfessionalHandler) ListProfessionals(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	professionals, err := h.professionalService.ListProfessionals(c.Request.Context(), actor)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionalResponses(professionals))
}

// GetProfessional busca um profissional por ID
//
//	@Summary	Obter profissional
//	@Tags		profissionais
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do profissional"
//	@Success	200	{object}	dto.ProfessionalResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/profissionais/{id} [get]
func (h *ProfessionalHandler) GetProfessional(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	professional, err := h.professionalService.GetProfessional(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}
