package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/dto"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/services"
)

// PatientHandler lida com requisições HTTP de pacientes
type PatientHandler struct {
	patientService *services.PatientService
}

// NewPatientHandler cria um novo PatientHandler
func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// CreatePatient cadastra um paciente
//
//	@Summary	Cadastrar paciente
//	@Tags		pacientes
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreatePatientRequest	true	"Dados do paciente"
//	@Success	201		{object}	dto.PatientResponse
//	@Failure	400		{object}	dto.ErrorResponse	"campos ausentes ou CPF já cadastrado"
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/pacientes [post]
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req dto.CreatePatientRequest
	if err := dto.BindJSON(c, &req, domainerrors.ErrPatientRequiredFields); err != nil {
		dto.RespondError(c, err)
		return
	}

	patient, err := h.patientService.CreatePatient(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPatientResponse(patient))
}

// ListPatients lista todos os pacientes
//
//	@Summary	Listar pacientes
//	@Tags		pacientes
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.PatientResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/pacientes [get]
func (h *PatientHandler) ListPatients(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	patients, err := h.patientService.ListPatients(c.Request.Context(), actor)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPatientResponses(patients))
}

// GetPatient busca um paciente por ID
//
//	@Summary	Obter paciente
//	@Tags		pacientes
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"ID do paciente"
//	@Success	200	{object}	dto.PatientResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/pacientes/{id} [get]
func (h *PatientHandler) GetPatient(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	patient, err := h.patientService.GetPatient(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPatientResponse(patient))
}
