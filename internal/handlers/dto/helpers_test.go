package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Mufasinha/vidaPlus-projetoAcademico/internal/infrastructure/i18n"
)

// newTestContext cria um contexto gin com corpo JSON e i18n em inglês
func newTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	svc, err := i18n.NewEmbeddedService("pt-BR")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/consultas", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(i18n.ServiceContextKey, svc)
	c.Set(i18n.LanguageContextKey, "en")
	c.Set(BaseURLContextKey, "http://vidaplus.test")
	return c, w
}
