package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/dto"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/middleware"
)

// actorFrom retorna o usuário autenticado ou responde 401.
// Rotas protegidas sempre passam por RequireAuth antes, então a falha indica rota mal registrada.
func actorFrom(c *gin.Context) (*entities.User, bool) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		dto.RespondError(c, domainerrors.NewUnauthorizedError(domainerrors.ErrMissingAuthHeader))
		return nil, false
	}
	return actor, true
}
