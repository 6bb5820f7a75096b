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

// ModalidadeHandler handles the /modalidades endpoints.
type ModalidadeHandler struct {
	modalidadeService service.ModalidadeService
}

// NewModalidadeHandler creates a new ModalidadeHandler.
func NewModalidadeHandler(modalidadeService service.ModalidadeService) *ModalidadeHandler {
	return &ModalidadeHandler{modalidadeService: modalidadeService}
}

// Listar godoc
// GET /api/v1/modalidades[/listar]
// Lists all modalidades, optionally filtered by nome/descricao substrings.
func (h *ModalidadeHandler) Listar(c *gin.Context) {
	f := model.ModalidadeFilter{
		Nome:      c.Query("nome"),
		Descricao: c.Query("descricao"),
	}

	modalidades, err := h.modalidadeService.Listar(c.Request.Context(), f)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Modalidades listadas com sucesso", gin.H{
		"modalidades": modalidades,
		"total":       len(modalidades),
	})
}

// Buscar godoc
// GET /api/v1/modalidades/buscar?id=N
// Fetches one modalidade by numeric id.
func (h *ModalidadeHandler) Buscar(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrIDInvalido)
		return
	}
	h.buscarPorID(c, id)
}

// BuscarPorSegmento godoc
// GET /api/v1/modalidades/:id
// A numeric path segment is an implicit id; anything else is an unknown action.
func (h *ModalidadeHandler) BuscarPorSegmento(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrAcaoNaoReconhecida)
		return
	}
	h.buscarPorID(c, id)
}

func (h *ModalidadeHandler) buscarPorID(c *gin.Context, id int) {
	m, err := h.modalidadeService.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Modalidade encontrada", m)
}

// BuscarPorNome godoc
// GET /api/v1/modalidades/nome?nome=X
// Searches modalidades by name substring.
func (h *ModalidadeHandler) BuscarPorNome(c *gin.Context) {
	nome := c.Query("nome")
	if nome == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrNomeObrigatorio)
		return
	}

	modalidades, err := h.modalidadeService.BuscarPorNome(c.Request.Context(), nome)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Modalidades encontradas", gin.H{
		"modalidades": modalidades,
		"total":       len(modalidades),
	})
}

// Opcoes godoc
// GET /api/v1/modalidades/select
// Returns the minimal id+nome projection for dropdowns.
func (h *ModalidadeHandler) Opcoes(c *gin.Context) {
	options, err := h.modalidadeService.Opcoes(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Modalidades para select", options)
}

// Contar godoc
// GET /api/v1/modalidades/contar
// Counts modalidades matching the optional nome filter.
func (h *ModalidadeHandler) Contar(c *gin.Context) {
	f := model.ModalidadeFilter{Nome: c.Query("nome")}

	total, err := h.modalidadeService.Contar(c.Request.Context(), f)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Total de modalidades", gin.H{"total": total})
}

// Paginacao godoc
// GET /api/v1/modalidades/paginacao?pagina=1&itens=10
// Returns one page of modalidades plus pagination metadata.
func (h *ModalidadeHandler) Paginacao(c *gin.Context) {
	pagina, _ := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	itens, _ := strconv.Atoi(c.DefaultQuery("itens", "10"))
	f := model.ModalidadeFilter{Nome: c.Query("nome")}

	modalidades, pagination, err := h.modalidadeService.ListarPaginado(c.Request.Context(), f, pagina, itens)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Modalidades com paginação", gin.H{
		"modalidades": modalidades,
	}, pagination)
}

// Criar godoc
// POST /api/v1/modalidades[/criar]
// Creates a modalidade after validation; duplicate names are rejected.
func (h *ModalidadeHandler) Criar(c *gin.Context) {
	var req model.CreateModalidadeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacao, fields)
		return
	}

	m, err := h.modalidadeService.Criar(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Modalidade criada com sucesso", m)
}

// VerificarNome godoc
// POST /api/v1/modalidades/verificar-nome
// Checks name availability without creating anything.
func (h *ModalidadeHandler) VerificarNome(c *gin.Context) {
	var req model.VerificarNomeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacao, fields)
		return
	}

	existe, err := h.modalidadeService.VerificarNome(c.Request.Context(), req.Nome, req.ExcluirID)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Verificação concluída", gin.H{"existe": existe})
}

// Atualizar godoc
// PUT /api/v1/modalidades[/atualizar]
// Partially updates a modalidade; the id comes from the body or query string.
func (h *ModalidadeHandler) Atualizar(c *gin.Context) {
	var req model.UpdateModalidadeRequest
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
// PUT /api/v1/modalidades/:id
// Partial update with the id taken from the path segment.
func (h *ModalidadeHandler) AtualizarPorSegmento(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrAcaoNaoReconhecida)
		return
	}

	var req model.UpdateModalidadeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacao, fields)
		return
	}

	h.atualizar(c, id, req)
}

func (h *ModalidadeHandler) atualizar(c *gin.Context, id int, req model.UpdateModalidadeRequest) {
	m, err := h.modalidadeService.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Modalidade atualizada com sucesso", m)
}

// Excluir godoc
// DELETE /api/v1/modalidades[/excluir]?id=N
// Deletes a modalidade; refused while dependents reference it.
func (h *ModalidadeHandler) Excluir(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrIDInvalido)
		return
	}
	h.excluir(c, id)
}

// ExcluirPorSegmento godoc
// DELETE /api/v1/modalidades/:id
func (h *ModalidadeHandler) ExcluirPorSegmento(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrAcaoNaoReconhecida)
		return
	}
	h.excluir(c, id)
}

func (h *ModalidadeHandler) excluir(c *gin.Context, id int) {
	if err := h.modalidadeService.Excluir(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Modalidade excluída com sucesso", nil)
}

// resolveID picks the record id from the body field or, failing that, the
// query string.
func resolveID(c *gin.Context, bodyID *int) (int, bool) {
	if bodyID != nil && *bodyID > 0 {
		return *bodyID, true
	}
	if raw := c.Query("id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			return id, true
		}
	}
	return 0, false
}
