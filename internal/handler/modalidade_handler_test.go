package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techfit/techfit-backend/internal/model"
	"github.com/techfit/techfit-backend/internal/repository"
	"github.com/techfit/techfit-backend/internal/response"
	"github.com/techfit/techfit-backend/internal/service"
	"github.com/techfit/techfit-backend/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Setup()
	os.Exit(m.Run())
}

// fakeModalidadeService lets each test script the service layer's answers.
type fakeModalidadeService struct {
	modalidade *model.Modalidade
	existe     bool
	err        error
}

func (s *fakeModalidadeService) Listar(context.Context, model.ModalidadeFilter) ([]model.Modalidade, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []model.Modalidade{}, nil
}

func (s *fakeModalidadeService) BuscarPorID(context.Context, int) (*model.Modalidade, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.modalidade, nil
}

func (s *fakeModalidadeService) BuscarPorNome(context.Context, string) ([]model.Modalidade, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []model.Modalidade{*s.modalidade}, nil
}

func (s *fakeModalidadeService) Opcoes(context.Context) ([]model.ModalidadeOption, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []model.ModalidadeOption{}, nil
}

func (s *fakeModalidadeService) Contar(context.Context, model.ModalidadeFilter) (int, error) {
	return 7, s.err
}

func (s *fakeModalidadeService) ListarPaginado(_ context.Context, _ model.ModalidadeFilter, pagina, itens int) ([]model.Modalidade, *response.Pagination, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return []model.Modalidade{}, &response.Pagination{Page: pagina, PerPage: itens}, nil
}

func (s *fakeModalidadeService) Criar(context.Context, model.CreateModalidadeRequest) (*model.Modalidade, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.modalidade, nil
}

func (s *fakeModalidadeService) VerificarNome(context.Context, string, *int) (bool, error) {
	return s.existe, s.err
}

func (s *fakeModalidadeService) Atualizar(context.Context, int, model.UpdateModalidadeRequest) (*model.Modalidade, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.modalidade, nil
}

func (s *fakeModalidadeService) Excluir(context.Context, int) error {
	return s.err
}

func setupModalidadeRouter(svc service.ModalidadeService) *gin.Engine {
	h := NewModalidadeHandler(svc)
	r := gin.New()
	g := r.Group("/api/v1/modalidades")
	g.GET("/buscar", h.Buscar)
	g.GET("/nome", h.BuscarPorNome)
	g.GET("/paginacao", h.Paginacao)
	g.GET("/:id", h.BuscarPorSegmento)
	g.POST("", h.Criar)
	g.POST("/verificar-nome", h.VerificarNome)
	g.PUT("", h.Atualizar)
	g.DELETE("/:id", h.ExcluirPorSegmento)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestCriarModalidade(t *testing.T) {
	svc := &fakeModalidadeService{modalidade: &model.Modalidade{ID: 1, Nome: "Pilates"}}
	r := setupModalidadeRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/v1/modalidades", gin.H{"nome_modalidade": "Pilates"})

	assert.Equal(t, http.StatusCreated, w.Code)
	res := decodeEnvelope(t, w)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Metadata.RequestID)
}

func TestCriarModalidadeSemNome(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{})

	w := doJSON(r, http.MethodPost, "/api/v1/modalidades", gin.H{"descricao_modalidade": "sem nome"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decodeEnvelope(t, w)
	assert.False(t, res.Success)
	assert.Contains(t, res.Fields, "nome_modalidade")
}

func TestCriarModalidadeNomeDuplicado(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{err: repository.ErrNomeDuplicado})

	w := doJSON(r, http.MethodPost, "/api/v1/modalidades", gin.H{"nome_modalidade": "Pilates"})

	assert.Equal(t, http.StatusConflict, w.Code)
	res := decodeEnvelope(t, w)
	assert.Equal(t, response.GetMessage(response.ErrNomeDuplicado), res.Message)
}

func TestCriarModalidadeViolacoes(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{
		err: &service.RuleViolationError{Violations: []string{"O nome da modalidade é obrigatório."}},
	})

	w := doJSON(r, http.MethodPost, "/api/v1/modalidades", gin.H{"nome_modalidade": "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decodeEnvelope(t, w)
	assert.Len(t, res.Errors, 1)
}

func TestBuscarIDInvalido(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{})

	w := doJSON(r, http.MethodGet, "/api/v1/modalidades/buscar?id=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decodeEnvelope(t, w)
	assert.Equal(t, response.GetMessage(response.ErrIDInvalido), res.Message)
}

func TestBuscarPorSegmentoNaoNumerico(t *testing.T) {
	// A non-numeric path segment is an unknown action, not a bad id.
	r := setupModalidadeRouter(&fakeModalidadeService{})

	w := doJSON(r, http.MethodGet, "/api/v1/modalidades/relatorio", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	res := decodeEnvelope(t, w)
	assert.Equal(t, response.GetMessage(response.ErrAcaoNaoReconhecida), res.Message)
}

func TestBuscarPorSegmentoNaoEncontrado(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{err: repository.ErrNaoEncontrado})

	w := doJSON(r, http.MethodGet, "/api/v1/modalidades/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	res := decodeEnvelope(t, w)
	assert.Equal(t, response.GetMessage(response.ErrNaoEncontrado), res.Message)
}

func TestBuscarPorNomeVazio(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{})

	w := doJSON(r, http.MethodGet, "/api/v1/modalidades/nome", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decodeEnvelope(t, w)
	assert.Equal(t, response.GetMessage(response.ErrNomeObrigatorio), res.Message)
}

func TestPaginacaoDefaults(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{})

	w := doJSON(r, http.MethodGet, "/api/v1/modalidades/paginacao", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeEnvelope(t, w)
	require.NotNil(t, res.Pagination)
	assert.Equal(t, 1, res.Pagination.Page)
	assert.Equal(t, 10, res.Pagination.PerPage)
}

func TestVerificarNome(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{existe: true})

	w := doJSON(r, http.MethodPost, "/api/v1/modalidades/verificar-nome", gin.H{"nome_modalidade": "Pilates"})

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeEnvelope(t, w)
	data, ok := res.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["existe"])
}

func TestAtualizarSemID(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{modalidade: &model.Modalidade{ID: 1}})

	w := doJSON(r, http.MethodPut, "/api/v1/modalidades", gin.H{"nome_modalidade": "Novo Nome"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decodeEnvelope(t, w)
	assert.Equal(t, response.GetMessage(response.ErrIDInvalido), res.Message)
}

func TestAtualizarComIDNaQuery(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{modalidade: &model.Modalidade{ID: 3, Nome: "Novo Nome"}})

	w := doJSON(r, http.MethodPut, "/api/v1/modalidades?id=3", gin.H{"nome_modalidade": "Novo Nome"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Success)
}

func TestExcluirComDependentes(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{err: service.ErrPossuiDependentes})

	w := doJSON(r, http.MethodDelete, "/api/v1/modalidades/3", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	res := decodeEnvelope(t, w)
	assert.Equal(t, response.GetMessage(response.ErrPossuiDependentes), res.Message)
}

func TestErroInternoOpaco(t *testing.T) {
	r := setupModalidadeRouter(&fakeModalidadeService{err: assert.AnError})

	w := doJSON(r, http.MethodGet, "/api/v1/modalidades/1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	res := decodeEnvelope(t, w)
	assert.Equal(t, response.GetMessage(response.ErrInterno), res.Message)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error(), "raw error text must not leak")
}
