package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse é o payload estático de liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health responde se a API está no ar; não toca o banco
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
