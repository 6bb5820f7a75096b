package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/techfit/techfit-backend/internal/model"
)

// AlunoRepository handles aluno data access, including matrículas.
type AlunoRepository interface {
	Create(ctx context.Context, a *model.Aluno) error
	GetByID(ctx context.Context, id int) (*model.Aluno, error)
	SearchByNome(ctx context.Context, nome string) ([]model.Aluno, error)
	List(ctx context.Context, f model.AlunoFilter) ([]model.Aluno, error)
	ListPaginated(ctx context.Context, f model.AlunoFilter, limit, offset int) ([]model.Aluno, int, error)
	Count(ctx context.Context, f model.AlunoFilter) (int, error)
	Update(ctx context.Context, a *model.Aluno) error
	Delete(ctx context.Context, id int) error
	NomeExiste(ctx context.Context, nome string, excluirID *int) (bool, error)
	CountDependentes(ctx context.Context, id int) (int, error)
	Options(ctx context.Context) ([]model.ModalidadeOption, error)

	ListMatriculas(ctx context.Context, alunoID int) ([]model.Matricula, error)
	CreateMatricula(ctx context.Context, alunoID, modalidadeID int) (*model.Matricula, error)
	DeleteMatricula(ctx context.Context, alunoID, modalidadeID int) error
}

type alunoRepository struct {
	pool *pgxpool.Pool
}

// NewAlunoRepository creates a new AlunoRepository.
func NewAlunoRepository(pool *pgxpool.Pool) AlunoRepository {
	return &alunoRepository{pool: pool}
}

const alunoColumns = `id, nome, email, telefone, sexo, status, criado_em, atualizado_em`

// Create inserts a new aluno. Unique violations are translated by constraint:
// nome → ErrNomeDuplicado, email → ErrEmailDuplicado.
func (r *alunoRepository) Create(ctx context.Context, a *model.Aluno) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO alunos (nome, email, telefone, sexo, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, criado_em, atualizado_em`,
		a.Nome, a.Email, a.Telefone, a.Sexo, a.Status,
	).Scan(&a.ID, &a.CriadoEm, &a.AtualizadoEm)
	if err != nil {
		return translateAlunoError(err)
	}
	return nil
}

// GetByID retrieves an aluno by ID.
func (r *alunoRepository) GetByID(ctx context.Context, id int) (*model.Aluno, error) {
	a := &model.Aluno{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+alunoColumns+` FROM alunos WHERE id = $1`, id,
	).Scan(&a.ID, &a.Nome, &a.Email, &a.Telefone, &a.Sexo, &a.Status, &a.CriadoEm, &a.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return a, nil
}

// SearchByNome retrieves alunos whose nome contains the given substring,
// case-insensitively, ordered by nome.
func (r *alunoRepository) SearchByNome(ctx context.Context, nome string) ([]model.Aluno, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+alunoColumns+` FROM alunos
		 WHERE nome ILIKE $1
		 ORDER BY nome ASC`,
		"%"+nome+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAlunos(rows)
}

// List retrieves all alunos matching the filter, ordered by nome.
func (r *alunoRepository) List(ctx context.Context, f model.AlunoFilter) ([]model.Aluno, error) {
	query, args := buildAlunoQuery(`SELECT `+alunoColumns+` FROM alunos WHERE 1=1`, f)
	query += ` ORDER BY nome ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAlunos(rows)
}

// ListPaginated retrieves a page of alunos plus the total count.
func (r *alunoRepository) ListPaginated(ctx context.Context, f model.AlunoFilter, limit, offset int) ([]model.Aluno, int, error) {
	total, err := r.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	query, args := buildAlunoQuery(`SELECT `+alunoColumns+` FROM alunos WHERE 1=1`, f)
	argIdx := len(args) + 1
	query += ` ORDER BY nome ASC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	alunos, err := scanAlunos(rows)
	if err != nil {
		return nil, 0, err
	}
	return alunos, total, nil
}

// Count returns the number of alunos matching the filter.
func (r *alunoRepository) Count(ctx context.Context, f model.AlunoFilter) (int, error) {
	query, args := buildAlunoQuery(`SELECT COUNT(*) FROM alunos WHERE 1=1`, f)

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Update replaces the mutable fields of an aluno by ID.
func (r *alunoRepository) Update(ctx context.Context, a *model.Aluno) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE alunos
		 SET nome = $1, email = $2, telefone = $3, sexo = $4, status = $5, atualizado_em = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING atualizado_em`,
		a.Nome, a.Email, a.Telefone, a.Sexo, a.Status, a.ID,
	).Scan(&a.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNaoEncontrado
		}
		return translateAlunoError(err)
	}
	return nil
}

// Delete removes an aluno by ID.
func (r *alunoRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM alunos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNaoEncontrado
	}
	return nil
}

// NomeExiste reports whether another aluno already uses this nome.
func (r *alunoRepository) NomeExiste(ctx context.Context, nome string, excluirID *int) (bool, error) {
	query := `SELECT COUNT(*) FROM alunos WHERE nome = $1`
	args := []interface{}{nome}
	if excluirID != nil {
		query += ` AND id != $2`
		args = append(args, *excluirID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return false, err
	}
	return total > 0, nil
}

// CountDependentes counts matrículas referencing this aluno.
func (r *alunoRepository) CountDependentes(ctx context.Context, id int) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM matriculas WHERE id_aluno = $1`, id,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Options retrieves the minimal id+nome projection for dropdowns.
func (r *alunoRepository) Options(ctx context.Context) ([]model.ModalidadeOption, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nome FROM alunos ORDER BY nome ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []model.ModalidadeOption
	for rows.Next() {
		var o model.ModalidadeOption
		if err := rows.Scan(&o.ID, &o.Nome); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

// ListMatriculas retrieves the aluno's enrollments joined with the
// modalidade name, ordered by modalidade name.
func (r *alunoRepository) ListMatriculas(ctx context.Context, alunoID int) ([]model.Matricula, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT mt.id_aluno, mt.id_modalidade, md.nome, mt.criado_em
		 FROM matriculas mt
		 JOIN modalidades md ON md.id = mt.id_modalidade
		 WHERE mt.id_aluno = $1
		 ORDER BY md.nome ASC`,
		alunoID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matriculas []model.Matricula
	for rows.Next() {
		var m model.Matricula
		if err := rows.Scan(&m.AlunoID, &m.ModalidadeID, &m.NomeModalidade, &m.CriadoEm); err != nil {
			return nil, err
		}
		matriculas = append(matriculas, m)
	}
	return matriculas, rows.Err()
}

// CreateMatricula enrolls an aluno in a modalidade. A duplicate pair becomes
// ErrJaMatriculado.
func (r *alunoRepository) CreateMatricula(ctx context.Context, alunoID, modalidadeID int) (*model.Matricula, error) {
	m := &model.Matricula{AlunoID: alunoID, ModalidadeID: modalidadeID}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO matriculas (id_aluno, id_modalidade)
		 VALUES ($1, $2)
		 RETURNING criado_em, (SELECT nome FROM modalidades WHERE id = $2)`,
		alunoID, modalidadeID,
	).Scan(&m.CriadoEm, &m.NomeModalidade)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrJaMatriculado
		}
		return nil, err
	}
	return m, nil
}

// DeleteMatricula cancels an enrollment.
func (r *alunoRepository) DeleteMatricula(ctx context.Context, alunoID, modalidadeID int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM matriculas WHERE id_aluno = $1 AND id_modalidade = $2`,
		alunoID, modalidadeID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNaoEncontrado
	}
	return nil
}

// translateAlunoError maps unique violations to the right sentinel by
// constraint name.
func translateAlunoError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return ErrEmailDuplicado
		}
		return ErrNomeDuplicado
	}
	return err
}

// buildAlunoQuery appends filter predicates to a base query.
func buildAlunoQuery(base string, f model.AlunoFilter) (string, []interface{}) {
	var args []interface{}

	if f.Nome != "" {
		args = append(args, "%"+f.Nome+"%")
		base += ` AND nome ILIKE $` + strconv.Itoa(len(args))
	}
	if f.Email != "" {
		args = append(args, "%"+f.Email+"%")
		base += ` AND email ILIKE $` + strconv.Itoa(len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		base += ` AND status = $` + strconv.Itoa(len(args))
	}
	return base, args
}

func scanAlunos(rows pgx.Rows) ([]model.Aluno, error) {
	var alunos []model.Aluno
	for rows.Next() {
		var a model.Aluno
		if err := rows.Scan(&a.ID, &a.Nome, &a.Email, &a.Telefone, &a.Sexo, &a.Status, &a.CriadoEm, &a.AtualizadoEm); err != nil {
			return nil, err
		}
		alunos = append(alunos, a)
	}
	return alunos, rows.Err()
}
