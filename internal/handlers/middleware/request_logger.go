package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/ports"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/dto"
)

const (
	// RequestIDHeader é ecoado em toda resposta
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey guarda o id da requisição no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestLogger atribui um id à requisição e registra método, rota, status e latência.
// Nunca registra corpo nem cabeçalhos (senhas e tokens).
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		fields := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case len(c.Errors) > 0:
			logger.Error("request failed", append(fields, "error", c.Errors.String())...)
		case c.Writer.Status() >= 500:
			logger.Error("request failed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// Recovery converte panics em 500 RFC 7807
func Recovery(logger ports.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"request_id", c.GetString(RequestIDContextKey),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		dto.RespondError(c, fmt.Errorf("panic: %v", recovered))
	})
}
