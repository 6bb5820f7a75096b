package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/techfit/techfit-backend/internal/model"
)

// ErrLoginDuplicado is returned when a funcionário login is already taken.
var ErrLoginDuplicado = errors.New("login de rede já cadastrado")

// FuncionarioRepository handles employee credential data access.
type FuncionarioRepository interface {
	GetByLogin(ctx context.Context, login string) (*model.Funcionario, error)
	Create(ctx context.Context, f *model.Funcionario) error
}

type funcionarioRepository struct {
	pool *pgxpool.Pool
}

// NewFuncionarioRepository creates a new FuncionarioRepository.
func NewFuncionarioRepository(pool *pgxpool.Pool) FuncionarioRepository {
	return &funcionarioRepository{pool: pool}
}

// GetByLogin retrieves a funcionário by network login.
func (r *funcionarioRepository) GetByLogin(ctx context.Context, login string) (*model.Funcionario, error) {
	f := &model.Funcionario{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, nome, login_rede, senha_hash, id_modalidade, criado_em
		 FROM funcionarios WHERE login_rede = $1`, login,
	).Scan(&f.ID, &f.Nome, &f.LoginRede, &f.SenhaHash, &f.ModalidadeID, &f.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return f, nil
}

// Create inserts a new funcionário. Only cmd/create-funcionario and the test
// fixtures use this; no API endpoint writes credentials.
func (r *funcionarioRepository) Create(ctx context.Context, f *model.Funcionario) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO funcionarios (nome, login_rede, senha_hash, id_modalidade)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, criado_em`,
		f.Nome, f.LoginRede, f.SenhaHash, f.ModalidadeID,
	).Scan(&f.ID, &f.CriadoEm)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrLoginDuplicado
		}
		return err
	}
	return nil
}
