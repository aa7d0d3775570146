package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/entities"
	domainerrors "github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/errors"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/domain/ports"
	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/handlers/dto"
)

// CurrentUserContextKey é a chave do usuário autenticado no contexto do Gin
const CurrentUserContextKey = "current_user"

// Authenticator resolve um token bearer no usuário que ele representa
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// AuthMiddleware protege rotas exigindo um token válido
type AuthMiddleware struct {
	authenticator Authenticator
	enforceRoles  bool
	logger        ports.Logger
}

// NewAuthMiddleware cria um novo middleware de autenticação.
// Com enforceRoles desligado, RequirePermission aceita qualquer usuário autenticado.
func NewAuthMiddleware(authenticator Authenticator, enforceRoles bool, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		enforceRoles:  enforceRoles,
		logger:        logger,
	}
}

// RequireAuth exige "Authorization: Bearer <token>" e coloca o usuário resolvido no contexto
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			dto.RespondError(c, domainerrors.NewUnauthorizedError(domainerrors.ErrMissingAuthHeader))
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			dto.RespondError(c, domainerrors.NewUnauthorizedError(domainerrors.ErrMalformedAuthHeader))
			return
		}

		user, err := m.authenticator.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			m.logger.Debug("authentication rejected", "path", c.Request.URL.Path, "error", err)
			dto.RespondError(c, err)
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// RequirePermission verifica se o role do usuário autenticado concede a permissão.
// Deve vir depois de RequireAuth.
func (m *AuthMiddleware) RequirePermission(permission entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			dto.RespondError(c, domainerrors.NewUnauthorizedError(domainerrors.ErrMissingAuthHeader))
			return
		}

		if m.enforceRoles && !user.HasPermission(permission) {
			m.logger.Warn("permission denied",
				"user_id", user.ID,
				"role", user.Role,
				"permission", permission,
				"granted", user.GetPermissions(),
			)
			dto.RespondError(c, domainerrors.NewForbiddenError(domainerrors.ErrForbidden))
			return
		}

		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado da requisição
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*entities.User)
	return user, ok && user != nil
}
