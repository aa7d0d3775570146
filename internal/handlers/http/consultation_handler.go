package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/dto"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/services"
)

// ConsultationHandler lida com requisições HTTP de consultas
type ConsultationHandler struct {
	consultationService *services.ConsultationService
}

func NewConsultationHandler(consultationService *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{
		consultationService: consultationService,
	}
}

// CreateConsultation agenda uma consulta presencial ou teleconsulta
//
//	@Summary		Agendar consulta
//	@Description	status é opcional (padrão "agendada"). Paciente e profissional precisam existir. data_hora deve ser ISO-8601 (2025-01-25T14:00, 2025-01-25T14:00:00 ou RFC 3339).
//	@Tags			consultas
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateConsultationRequest	true	"Dados da consulta"
//	@Success		201		{object}	dto.ConsultationResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse	"paciente ou profissional não encontrado"
//	@Router			/consultas [post]
func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.CreateConsultationRequest
	if err := dto.BindJSON(c, &req, domainerrors.ErrConsultationRequiredFields); err != nil {
		dto.RespondError(c, err)
		return
	}

	consultation, err := h.consultationService.CreateConsultation(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConsultationResponse(consultation))
}

// ListConsultations lista consultas com filtros opcionais
//
//	@Summary	Listar consultas
//	@Tags		consultas
//	@Produce	json
//	@Security	BearerAuth
//	@Param		paciente_id		query		string	false	"Filtrar por paciente"
//	@Param		profissional_id	query		string	false	"Filtrar por profissional"
//	@Success	200				{array}		dto.ConsultationResponse
//	@Failure	401				{object}	dto.ErrorResponse
//	@Router		/consultas [get]
func (h *ConsultationHandler) ListConsultations(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var query dto.ListConsultationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.RespondError(c, domainerrors.NewValidationError(domainerrors.ErrInvalidRequestBody))
		return
	}

	consultations, err := h.consultationService.ListConsultations(c.Request.Context(), actor, query.ToFilters())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultationResponses(consultations))
}

// GetConsultation busca uma consulta por ID
//
//	@Summary	Obter consulta
//	@Tags		consultas
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID da consulta"
//	@Success	200	{object}	dto.ConsultationResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/consultas/{id} [get]
func (h *ConsultationHandler) GetConsultation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	consultation, err := h.consultationService.GetConsultation(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultationResponse(consultation))
}
