package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techfit/techfit-backend/internal/model"
	"github.com/techfit/techfit-backend/internal/repository"
)

// fakeAlunoRepo is an in-memory AlunoRepository for service tests.
type fakeAlunoRepo struct {
	alunos     map[int]*model.Aluno
	matriculas map[[2]int]model.Matricula
	nextID     int
}

func newFakeAlunoRepo() *fakeAlunoRepo {
	return &fakeAlunoRepo{
		alunos:     make(map[int]*model.Aluno),
		matriculas: make(map[[2]int]model.Matricula),
		nextID:     1,
	}
}

func (r *fakeAlunoRepo) Create(_ context.Context, a *model.Aluno) error {
	for _, existing := range r.alunos {
		if existing.Nome == a.Nome {
			return repository.ErrNomeDuplicado
		}
		if existing.Email == a.Email {
			return repository.ErrEmailDuplicado
		}
	}
	a.ID = r.nextID
	r.nextID++
	copied := *a
	r.alunos[a.ID] = &copied
	return nil
}

func (r *fakeAlunoRepo) GetByID(_ context.Context, id int) (*model.Aluno, error) {
	a, ok := r.alunos[id]
	if !ok {
		return nil, repository.ErrNaoEncontrado
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAlunoRepo) SearchByNome(_ context.Context, nome string) ([]model.Aluno, error) {
	var out []model.Aluno
	for _, a := range r.alunos {
		if a.Nome == nome {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAlunoRepo) List(_ context.Context, _ model.AlunoFilter) ([]model.Aluno, error) {
	var out []model.Aluno
	for _, a := range r.alunos {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAlunoRepo) ListPaginated(ctx context.Context, f model.AlunoFilter, limit, offset int) ([]model.Aluno, int, error) {
	all, _ := r.List(ctx, f)
	total := len(all)
	if offset >= total {
		return []model.Aluno{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *fakeAlunoRepo) Count(_ context.Context, _ model.AlunoFilter) (int, error) {
	return len(r.alunos), nil
}

func (r *fakeAlunoRepo) Update(_ context.Context, a *model.Aluno) error {
	if _, ok := r.alunos[a.ID]; !ok {
		return repository.ErrNaoEncontrado
	}
	copied := *a
	r.alunos[a.ID] = &copied
	return nil
}

func (r *fakeAlunoRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.alunos[id]; !ok {
		return repository.ErrNaoEncontrado
	}
	delete(r.alunos, id)
	return nil
}

func (r *fakeAlunoRepo) NomeExiste(_ context.Context, nome string, excluirID *int) (bool, error) {
	for id, a := range r.alunos {
		if excluirID != nil && id == *excluirID {
			continue
		}
		if a.Nome == nome {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAlunoRepo) CountDependentes(_ context.Context, id int) (int, error) {
	total := 0
	for key := range r.matriculas {
		if key[0] == id {
			total++
		}
	}
	return total, nil
}

func (r *fakeAlunoRepo) Options(_ context.Context) ([]model.ModalidadeOption, error) {
	var out []model.ModalidadeOption
	for _, a := range r.alunos {
		out = append(out, model.ModalidadeOption{ID: a.ID, Nome: a.Nome})
	}
	return out, nil
}

func (r *fakeAlunoRepo) ListMatriculas(_ context.Context, alunoID int) ([]model.Matricula, error) {
	var out []model.Matricula
	for key, m := range r.matriculas {
		if key[0] == alunoID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeAlunoRepo) CreateMatricula(_ context.Context, alunoID, modalidadeID int) (*model.Matricula, error) {
	key := [2]int{alunoID, modalidadeID}
	if _, ok := r.matriculas[key]; ok {
		return nil, repository.ErrJaMatriculado
	}
	m := model.Matricula{AlunoID: alunoID, ModalidadeID: modalidadeID}
	r.matriculas[key] = m
	return &m, nil
}

func (r *fakeAlunoRepo) DeleteMatricula(_ context.Context, alunoID, modalidadeID int) error {
	key := [2]int{alunoID, modalidadeID}
	if _, ok := r.matriculas[key]; !ok {
		return repository.ErrNaoEncontrado
	}
	delete(r.matriculas, key)
	return nil
}

func validCreateAluno() model.CreateAlunoRequest {
	return model.CreateAlunoRequest{
		Nome:  "Maria Silva",
		Email: "maria@example.com",
		Sexo:  model.SexoFeminino,
	}
}

func TestAlunoCriarDefaultsStatusAtivo(t *testing.T) {
	svc := NewAlunoService(newFakeAlunoRepo(), newFakeModalidadeRepo())

	a, err := svc.Criar(context.Background(), validCreateAluno())
	require.NoError(t, err)
	assert.Equal(t, model.StatusAtivo, a.Status)
}

func TestAlunoCriarEmailDuplicado(t *testing.T) {
	svc := NewAlunoService(newFakeAlunoRepo(), newFakeModalidadeRepo())
	ctx := context.Background()

	_, err := svc.Criar(ctx, validCreateAluno())
	require.NoError(t, err)

	req := validCreateAluno()
	req.Nome = "Outra Pessoa"
	_, err = svc.Criar(ctx, req)
	assert.ErrorIs(t, err, repository.ErrEmailDuplicado)
}

func TestAlunoAtualizarParcial(t *testing.T) {
	svc := NewAlunoService(newFakeAlunoRepo(), newFakeModalidadeRepo())
	ctx := context.Background()

	created, err := svc.Criar(ctx, validCreateAluno())
	require.NoError(t, err)

	inativo := model.StatusInativo
	updated, err := svc.Atualizar(ctx, created.ID, model.UpdateAlunoRequest{Status: &inativo})
	require.NoError(t, err)

	assert.Equal(t, model.StatusInativo, updated.Status)
	assert.Equal(t, "Maria Silva", updated.Nome, "omitted field must stay unchanged")
	assert.Equal(t, "maria@example.com", updated.Email)
}

func TestAlunoExcluirComMatricula(t *testing.T) {
	repo := newFakeAlunoRepo()
	modalidadeRepo := newFakeModalidadeRepo()
	svc := NewAlunoService(repo, modalidadeRepo)
	ctx := context.Background()

	created, err := svc.Criar(ctx, validCreateAluno())
	require.NoError(t, err)

	modalidade := &model.Modalidade{Nome: "Pilates"}
	require.NoError(t, modalidadeRepo.Create(ctx, modalidade))

	_, err = svc.Matricular(ctx, created.ID, modalidade.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Excluir(ctx, created.ID), ErrPossuiDependentes)

	// Cancelling the matrícula unblocks the delete.
	require.NoError(t, svc.CancelarMatricula(ctx, created.ID, modalidade.ID))
	assert.NoError(t, svc.Excluir(ctx, created.ID))
}

func TestAlunoMatricularModalidadeInexistente(t *testing.T) {
	svc := NewAlunoService(newFakeAlunoRepo(), newFakeModalidadeRepo())
	ctx := context.Background()

	created, err := svc.Criar(ctx, validCreateAluno())
	require.NoError(t, err)

	_, err = svc.Matricular(ctx, created.ID, 99)
	assert.ErrorIs(t, err, repository.ErrNaoEncontrado)
}

func TestAlunoMatricularDuplicado(t *testing.T) {
	repo := newFakeAlunoRepo()
	modalidadeRepo := newFakeModalidadeRepo()
	svc := NewAlunoService(repo, modalidadeRepo)
	ctx := context.Background()

	created, err := svc.Criar(ctx, validCreateAluno())
	require.NoError(t, err)

	modalidade := &model.Modalidade{Nome: "Crossfit"}
	require.NoError(t, modalidadeRepo.Create(ctx, modalidade))

	_, err = svc.Matricular(ctx, created.ID, modalidade.ID)
	require.NoError(t, err)

	_, err = svc.Matricular(ctx, created.ID, modalidade.ID)
	assert.ErrorIs(t, err, repository.ErrJaMatriculado)
}

func TestAlunoListarMatriculasAlunoInexistente(t *testing.T) {
	svc := NewAlunoService(newFakeAlunoRepo(), newFakeModalidadeRepo())

	_, err := svc.ListarMatriculas(context.Background(), 7)
	assert.ErrorIs(t, err, repository.ErrNaoEncontrado)
}

func TestAlunoCriarSexoInvalido(t *testing.T) {
	svc := NewAlunoService(newFakeAlunoRepo(), newFakeModalidadeRepo())

	req := validCreateAluno()
	req.Sexo = model.SexoAluno("Z")
	_, err := svc.Criar(context.Background(), req)

	var rve *RuleViolationError
	require.ErrorAs(t, err, &rve)
	assert.Contains(t, rve.Violations[0], "sexo")
}
