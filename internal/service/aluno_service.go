package service

import (
	"context"

	"github.com/techfit/techfit-backend/internal/model"
	"github.com/techfit/techfit-backend/internal/repository"
	"github.com/techfit/techfit-backend/internal/response"
)

// AlunoService handles aluno business logic, including matrículas.
type AlunoService interface {
	Listar(ctx context.Context, f model.AlunoFilter) ([]model.Aluno, error)
	BuscarPorID(ctx context.Context, id int) (*model.Aluno, error)
	BuscarPorNome(ctx context.Context, nome string) ([]model.Aluno, error)
	Opcoes(ctx context.Context) ([]model.ModalidadeOption, error)
	Contar(ctx context.Context, f model.AlunoFilter) (int, error)
	ListarPaginado(ctx context.Context, f model.AlunoFilter, pagina, itens int) ([]model.Aluno, *response.Pagination, error)
	Criar(ctx context.Context, req model.CreateAlunoRequest) (*model.Aluno, error)
	VerificarNome(ctx context.Context, nome string, excluirID *int) (bool, error)
	Atualizar(ctx context.Context, id int, req model.UpdateAlunoRequest) (*model.Aluno, error)
	Excluir(ctx context.Context, id int) error

	ListarMatriculas(ctx context.Context, alunoID int) ([]model.Matricula, error)
	Matricular(ctx context.Context, alunoID, modalidadeID int) (*model.Matricula, error)
	CancelarMatricula(ctx context.Context, alunoID, modalidadeID int) error
}

type alunoService struct {
	repo           repository.AlunoRepository
	modalidadeRepo repository.ModalidadeRepository
}

// NewAlunoService creates a new AlunoService. The modalidade repository is
// needed to verify enrollment targets exist.
func NewAlunoService(repo repository.AlunoRepository, modalidadeRepo repository.ModalidadeRepository) AlunoService {
	return &alunoService{repo: repo, modalidadeRepo: modalidadeRepo}
}

func (s *alunoService) Listar(ctx context.Context, f model.AlunoFilter) ([]model.Aluno, error) {
	alunos, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if alunos == nil {
		alunos = []model.Aluno{}
	}
	return alunos, nil
}

func (s *alunoService) BuscarPorID(ctx context.Context, id int) (*model.Aluno, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *alunoService) BuscarPorNome(ctx context.Context, nome string) ([]model.Aluno, error) {
	alunos, err := s.repo.SearchByNome(ctx, nome)
	if err != nil {
		return nil, err
	}
	if alunos == nil {
		alunos = []model.Aluno{}
	}
	return alunos, nil
}

func (s *alunoService) Opcoes(ctx context.Context) ([]model.ModalidadeOption, error) {
	options, err := s.repo.Options(ctx)
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []model.ModalidadeOption{}
	}
	return options, nil
}

func (s *alunoService) Contar(ctx context.Context, f model.AlunoFilter) (int, error) {
	return s.repo.Count(ctx, f)
}

// ListarPaginado returns one 1-indexed page plus pagination metadata.
func (s *alunoService) ListarPaginado(ctx context.Context, f model.AlunoFilter, pagina, itens int) ([]model.Aluno, *response.Pagination, error) {
	if pagina < 1 {
		pagina = 1
	}
	if itens < 1 {
		itens = 10
	}
	if itens > 100 {
		itens = 100
	}

	alunos, total, err := s.repo.ListPaginated(ctx, f, itens, (pagina-1)*itens)
	if err != nil {
		return nil, nil, err
	}
	if alunos == nil {
		alunos = []model.Aluno{}
	}

	pagination := &response.Pagination{
		Page:       pagina,
		PerPage:    itens,
		TotalItems: total,
		TotalPages: (total + itens - 1) / itens,
	}

	return alunos, pagination, nil
}

// Criar validates and persists a new aluno. New members default to ativo.
func (s *alunoService) Criar(ctx context.Context, req model.CreateAlunoRequest) (*model.Aluno, error) {
	a := &model.Aluno{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Sexo:     req.Sexo,
		Status:   req.Status,
	}
	if a.Status == "" {
		a.Status = model.StatusAtivo
	}
	a.Normalizar()

	if violations := a.Validar(); len(violations) > 0 {
		return nil, &RuleViolationError{Violations: violations}
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *alunoService) VerificarNome(ctx context.Context, nome string, excluirID *int) (bool, error) {
	return s.repo.NomeExiste(ctx, nome, excluirID)
}

// Atualizar overlays the provided fields onto the stored record, re-validates
// and persists. Unspecified fields stay unchanged.
func (s *alunoService) Atualizar(ctx context.Context, id int, req model.UpdateAlunoRequest) (*model.Aluno, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		a.Nome = *req.Nome
	}
	if req.Email != nil {
		a.Email = *req.Email
	}
	if req.Telefone != nil {
		a.Telefone = *req.Telefone
	}
	if req.Sexo != nil {
		a.Sexo = *req.Sexo
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	a.Normalizar()

	if violations := a.Validar(); len(violations) > 0 {
		return nil, &RuleViolationError{Violations: violations}
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Excluir removes an aluno unless matrículas still reference them.
func (s *alunoService) Excluir(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	dependentes, err := s.repo.CountDependentes(ctx, id)
	if err != nil {
		return err
	}
	if dependentes > 0 {
		return ErrPossuiDependentes
	}

	return s.repo.Delete(ctx, id)
}

func (s *alunoService) ListarMatriculas(ctx context.Context, alunoID int) ([]model.Matricula, error) {
	if _, err := s.repo.GetByID(ctx, alunoID); err != nil {
		return nil, err
	}

	matriculas, err := s.repo.ListMatriculas(ctx, alunoID)
	if err != nil {
		return nil, err
	}
	if matriculas == nil {
		matriculas = []model.Matricula{}
	}
	return matriculas, nil
}

// Matricular enrolls an aluno in a modalidade after verifying both exist.
// A duplicate pair surfaces as repository.ErrJaMatriculado.
func (s *alunoService) Matricular(ctx context.Context, alunoID, modalidadeID int) (*model.Matricula, error) {
	if _, err := s.repo.GetByID(ctx, alunoID); err != nil {
		return nil, err
	}
	if _, err := s.modalidadeRepo.GetByID(ctx, modalidadeID); err != nil {
		return nil, err
	}

	return s.repo.CreateMatricula(ctx, alunoID, modalidadeID)
}

func (s *alunoService) CancelarMatricula(ctx context.Context, alunoID, modalidadeID int) error {
	return s.repo.DeleteMatricula(ctx, alunoID, modalidadeID)
}
