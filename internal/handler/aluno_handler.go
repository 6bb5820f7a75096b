package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/techfit/techfit-backend/internal/model"
	"github.com/techfit/techfit-backend/internal/response"
	"github.com/techfit/techfit-backend/internal/service"
	"github.com/techfit/techfit-backend/internal/validator"
)

// AlunoHandler handles the /alunos endpoints, including matrículas.
type AlunoHandler struct {
	alunoService service.AlunoService
}

// NewAlunoHandler creates a new AlunoHandler.
func NewAlunoHandler(alunoService service.AlunoService) *AlunoHandler {
	return &AlunoHandler{alunoService: alunoService}
}

// Listar godoc
// GET /api/v1/alunos[/listar]
// Lists all alunos, optionally filtered by nome/email/status.
func (h *AlunoHandler) Listar(c *gin.Context) {
	f := model.AlunoFilter{
		Nome:   c.Query("nome"),
		Email:  c.Query("email"),
		Status: c.Query("status"),
	}

	alunos, err := h.alunoService.Listar(c.Request.Context(), f)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Alunos listados com sucesso", gin.H{
		"alunos": alunos,
		"total":  len(alunos),
	})
}

// Buscar godoc
// GET /api/v1/alunos/buscar?id=N
func (h *AlunoHandler) Buscar(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrIDInvalido)
		return
	}
	h.buscarPorID(c, id)
}

// BuscarPorSegmento godoc
// GET /api/v1/alunos/:id
func (h *AlunoHandler) BuscarPorSegmento(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrAcaoNaoReconhecida)
		return
	}
	h.buscarPorID(c, id)
}

func (h *AlunoHandler) buscarPorID(c *gin.Context, id int) {
	a, err := h.alunoService.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Aluno encontrado", a)
}

// BuscarPorNome godoc
// GET /api/v1/alunos/nome?nome=X
func (h *AlunoHandler) BuscarPorNome(c *gin.Context) {
	nome := c.Query("nome")
	if nome == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrNomeObrigatorio)
		return
	}

	alunos, err := h.alunoService.BuscarPorNome(c.Request.Context(), nome)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Alunos encontrados", gin.H{
		"alunos": alunos,
		"total":  len(alunos),
	})
}

// Opcoes godoc
// GET /api/v1/alunos/select
func (h *AlunoHandler) Opcoes(c *gin.Context) {
	options, err := h.alunoService.Opcoes(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Alunos para select", options)
}

// Contar godoc
// GET /api/v1/alunos/contar
func (h *AlunoHandler) Contar(c *gin.Context) {
	f := model.AlunoFilter{
		Nome:   c.Query("nome"),
		Status: c.Query("status"),
	}

	total, err := h.alunoService.Contar(c.Request.Context(), f)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Total de alunos", gin.H{"total": total})
}

// Paginacao godoc
// GET /api/v1/alunos/paginacao?pagina=1&itens=10
func (h *AlunoHandler) Paginacao(c *gin.Context) {
	pagina, _ := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	itens, _ := strconv.Atoi(c.DefaultQuery("itens", "10"))
	f := model.AlunoFilter{
		Nome:   c.Query("nome"),
		Status: c.Query("status"),
	}

	alunos, pagination, err := h.alunoService.ListarPaginado(c.Request.Context(), f, pagina, itens)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Alunos com paginação", gin.H{
		"alunos": alunos,
	}, pagination)
}

// Criar godoc
// POST /api/v1/alunos[/criar]
func (h *AlunoHandler) Criar(c *gin.Context) {
	var req model.CreateAlunoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacao, fields)
		return
	}

	a, err := h.alunoService.Criar(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Aluno criado com sucesso", a)
}

// VerificarNome godoc
// POST /api/v1/alunos/verificar-nome
func (h *AlunoHandler) VerificarNome(c *gin.Context) {
	var req model.VerificarNomeAlunoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacao, fields)
		return
	}

	existe, err := h.alunoService.VerificarNome(c.Request.Context(), req.Nome, req.ExcluirID)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Verificação concluída", gin.H{"existe": existe})
}

// Atualizar godoc
// PUT /api/v1/alunos[/atualizar]
func (h *AlunoHandler) Atualizar(c *gin.Context) {
	var req model.UpdateAlunoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacao, fields)
		return
	}

	id, ok := resolveID(c, req.ID)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrIDInvalido)
		return
	}

	h.atualizar(c, id, req)
}

// AtualizarPorSegmento godoc
// PUT /api/v1/alunos/:id
func (h *AlunoHandler) AtualizarPorSegmento(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrAcaoNaoReconhecida)
		return
	}

	var req model.UpdateAlunoRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacao, fields)
		return
	}

	h.atualizar(c, id, req)
}

func (h *AlunoHandler) atualizar(c *gin.Context, id int, req model.UpdateAlunoRequest) {
	a, err := h.alunoService.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Aluno atualizado com sucesso", a)
}

// Excluir godoc
// DELETE /api/v1/alunos[/excluir]?id=N
func (h *AlunoHandler) Excluir(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrIDInvalido)
		return
	}
	h.excluir(c, id)
}

// ExcluirPorSegmento godoc
// DELETE /api/v1/alunos/:id
func (h *AlunoHandler) ExcluirPorSegmento(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrAcaoNaoReconhecida)
		return
	}
	h.excluir(c, id)
}

func (h *AlunoHandler) excluir(c *gin.Context, id int) {
	if err := h.alunoService.Excluir(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Aluno excluído com sucesso", nil)
}

// ListarMatriculas godoc
// GET /api/v1/alunos/:id/matriculas
func (h *AlunoHandler) ListarMatriculas(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrIDInvalido)
		return
	}

	matriculas, err := h.alunoService.ListarMatriculas(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Matrículas listadas com sucesso", gin.H{
		"matriculas": matriculas,
		"total":      len(matriculas),
	})
}

// Matricular godoc
// POST /api/v1/alunos/:id/matriculas
func (h *AlunoHandler) Matricular(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrIDInvalido)
		return
	}

	var req model.CreateMatriculaRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacao, fields)
		return
	}

	m, err := h.alunoService.Matricular(c.Request.Context(), id, req.ModalidadeID)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Matrícula realizada com sucesso", m)
}

// CancelarMatricula godoc
// DELETE /api/v1/alunos/:id/matriculas/:modalidade_id
func (h *AlunoHandler) CancelarMatricula(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrIDInvalido)
		return
	}
	modalidadeID, err := strconv.Atoi(c.Param("modalidade_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrIDInvalido)
		return
	}

	if err := h.alunoService.CancelarMatricula(c.Request.Context(), id, modalidadeID); err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Matrícula cancelada com sucesso", nil)
}
