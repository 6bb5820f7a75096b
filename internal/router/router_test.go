package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techfit/techfit-backend/internal/config"
	"github.com/techfit/techfit-backend/internal/handler"
	"github.com/techfit/techfit-backend/internal/response"
)

// The routes exercised here answer before any handler touches a service, so
// empty handler instances are enough.
func setupTestRouter() *gin.Engine {
	cfg := &config.Config{
		GinMode:        gin.TestMode,
		LoginRateLimit: 5,
	}
	handlers := &Handlers{
		Auth:       handler.NewAuthHandler(nil),
		Modalidade: handler.NewModalidadeHandler(nil),
		Aluno:      handler.NewAlunoHandler(nil),
	}
	return SetupRouter(handlers, cfg, zerolog.Nop())
}

func request(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Message
}

func TestHealth(t *testing.T) {
	w := request(setupTestRouter(), http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

// POST takes no id segment; posting to one is an unknown action, not a
// disallowed method.
func TestPostComSegmentoNaoReconhecido(t *testing.T) {
	r := setupTestRouter()

	for _, path := range []string{"/api/v1/modalidades/5", "/api/v1/alunos/5"} {
		w := request(r, http.MethodPost, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, response.GetMessage(response.ErrAcaoNaoReconhecida), decodeMessage(t, w), path)
	}
}

func TestMetodoNaoPermitido(t *testing.T) {
	r := setupTestRouter()

	w := request(r, http.MethodPatch, "/api/v1/modalidades")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, response.GetMessage(response.ErrMetodoNaoPermitido), decodeMessage(t, w))
}

func TestRotaDesconhecida(t *testing.T) {
	r := setupTestRouter()

	w := request(r, http.MethodGet, "/api/v1/turmas")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.GetMessage(response.ErrAcaoNaoReconhecida), decodeMessage(t, w))
}
