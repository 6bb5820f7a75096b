package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techfit/techfit-backend/internal/config"
	"github.com/techfit/techfit-backend/internal/model"
	"github.com/techfit/techfit-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// fakeFuncionarioRepo is an in-memory FuncionarioRepository keyed by login.
type fakeFuncionarioRepo struct {
	funcionarios map[string]*model.Funcionario
	nextID       int
}

func newFakeFuncionarioRepo() *fakeFuncionarioRepo {
	return &fakeFuncionarioRepo{funcionarios: make(map[string]*model.Funcionario), nextID: 1}
}

func (r *fakeFuncionarioRepo) GetByLogin(_ context.Context, login string) (*model.Funcionario, error) {
	f, ok := r.funcionarios[login]
	if !ok {
		return nil, repository.ErrNaoEncontrado
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFuncionarioRepo) Create(_ context.Context, f *model.Funcionario) error {
	if _, ok := r.funcionarios[f.LoginRede]; ok {
		return repository.ErrLoginDuplicado
	}
	f.ID = r.nextID
	r.nextID++
	copied := *f
	r.funcionarios[f.LoginRede] = &copied
	return nil
}

func newAuthService(repo repository.FuncionarioRepository) *AuthService {
	// MinCost keeps the bcrypt rounds cheap under test.
	return NewAuthService(&config.Config{BcryptCost: bcrypt.MinCost}, repo)
}

func TestAuthLogin(t *testing.T) {
	repo := newFakeFuncionarioRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	hash, err := svc.HashSenha("segredo123")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &model.Funcionario{
		Nome:      "Carlos Souza",
		LoginRede: "carlos.souza",
		SenhaHash: hash,
	}))

	f, err := svc.Login(ctx, "carlos.souza", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Souza", f.Nome)
	assert.Equal(t, "carlos.souza", f.LoginRede)
}

func TestAuthLoginSenhaErrada(t *testing.T) {
	repo := newFakeFuncionarioRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	hash, err := svc.HashSenha("segredo123")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, &model.Funcionario{
		Nome:      "Carlos Souza",
		LoginRede: "carlos.souza",
		SenhaHash: hash,
	}))

	_, err = svc.Login(ctx, "carlos.souza", "outra-senha")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

// Unknown login and wrong password must be indistinguishable to the caller.
func TestAuthLoginUsuarioInexistente(t *testing.T) {
	svc := newAuthService(newFakeFuncionarioRepo())

	_, err := svc.Login(context.Background(), "ninguem", "qualquer")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestHashSenhaRoundTrip(t *testing.T) {
	svc := newAuthService(newFakeFuncionarioRepo())

	hash, err := svc.HashSenha("minha-senha")
	require.NoError(t, err)
	assert.NotEqual(t, "minha-senha", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("minha-senha")))
}
