package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/techfit/techfit-backend/internal/model"
)

// ModalidadeRepository handles modalidade data access.
type ModalidadeRepository interface {
	Create(ctx context.Context, m *model.Modalidade) error
	GetByID(ctx context.Context, id int) (*model.Modalidade, error)
	SearchByNome(ctx context.Context, nome string) ([]model.Modalidade, error)
	List(ctx context.Context, f model.ModalidadeFilter) ([]model.Modalidade, error)
	ListPaginated(ctx context.Context, f model.ModalidadeFilter, limit, offset int) ([]model.Modalidade, int, error)
	Count(ctx context.Context, f model.ModalidadeFilter) (int, error)
	Update(ctx context.Context, m *model.Modalidade) error
	Delete(ctx context.Context, id int) error
	NomeExiste(ctx context.Context, nome string, excluirID *int) (bool, error)
	CountDependentes(ctx context.Context, id int) (int, error)
	Options(ctx context.Context) ([]model.ModalidadeOption, error)
}

type modalidadeRepository struct {
	pool *pgxpool.Pool
}

// NewModalidadeRepository creates a new ModalidadeRepository.
func NewModalidadeRepository(pool *pgxpool.Pool) ModalidadeRepository {
	return &modalidadeRepository{pool: pool}
}

const modalidadeColumns = `id, nome, descricao, criado_em, atualizado_em`

// Create inserts a new modalidade. A unique violation on nome becomes
// ErrNomeDuplicado.
func (r *modalidadeRepository) Create(ctx context.Context, m *model.Modalidade) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO modalidades (nome, descricao)
		 VALUES ($1, $2)
		 RETURNING id, criado_em, atualizado_em`,
		m.Nome, m.Descricao,
	).Scan(&m.ID, &m.CriadoEm, &m.AtualizadoEm)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrNomeDuplicado
		}
		return err
	}
	return nil
}

// GetByID retrieves a modalidade by ID.
func (r *modalidadeRepository) GetByID(ctx context.Context, id int) (*model.Modalidade, error) {
	m := &model.Modalidade{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+modalidadeColumns+` FROM modalidades WHERE id = $1`, id,
	).Scan(&m.ID, &m.Nome, &m.Descricao, &m.CriadoEm, &m.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return m, nil
}

// SearchByNome retrieves modalidades whose nome contains the given substring,
// case-insensitively, ordered by nome. The wildcard wrapping happens before
// binding so the value itself stays parameterized.
func (r *modalidadeRepository) SearchByNome(ctx context.Context, nome string) ([]model.Modalidade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+modalidadeColumns+` FROM modalidades
		 WHERE nome ILIKE $1
		 ORDER BY nome ASC`,
		"%"+nome+"%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanModalidades(rows)
}

// List retrieves all modalidades matching the filter, ordered by nome.
func (r *modalidadeRepository) List(ctx context.Context, f model.ModalidadeFilter) ([]model.Modalidade, error) {
	query, args := buildModalidadeQuery(`SELECT `+modalidadeColumns+` FROM modalidades WHERE 1=1`, f)
	query += ` ORDER BY nome ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanModalidades(rows)
}

// ListPaginated retrieves a page of modalidades plus the total count for the
// same filter.
func (r *modalidadeRepository) ListPaginated(ctx context.Context, f model.ModalidadeFilter, limit, offset int) ([]model.Modalidade, int, error) {
	total, err := r.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	query, args := buildModalidadeQuery(`SELECT `+modalidadeColumns+` FROM modalidades WHERE 1=1`, f)
	argIdx := len(args) + 1
	query += ` ORDER BY nome ASC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	modalidades, err := scanModalidades(rows)
	if err != nil {
		return nil, 0, err
	}
	return modalidades, total, nil
}

// Count returns the number of modalidades matching the filter.
func (r *modalidadeRepository) Count(ctx context.Context, f model.ModalidadeFilter) (int, error) {
	query, args := buildModalidadeQuery(`SELECT COUNT(*) FROM modalidades WHERE 1=1`, f)

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Update replaces the mutable fields of a modalidade by ID.
func (r *modalidadeRepository) Update(ctx context.Context, m *model.Modalidade) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE modalidades
		 SET nome = $1, descricao = $2, atualizado_em = CURRENT_TIMESTAMP
		 WHERE id = $3
		 RETURNING atualizado_em`,
		m.Nome, m.Descricao, m.ID,
	).Scan(&m.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNaoEncontrado
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrNomeDuplicado
		}
		return err
	}
	return nil
}

// Delete removes a modalidade by ID. Dependency checks happen in the service
// before this runs; the schema's RESTRICT FKs are the backstop.
func (r *modalidadeRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM modalidades WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNaoEncontrado
	}
	return nil
}

// NomeExiste reports whether another modalidade already uses this nome,
// optionally excluding one ID (the update form's own row).
func (r *modalidadeRepository) NomeExiste(ctx context.Context, nome string, excluirID *int) (bool, error) {
	query := `SELECT COUNT(*) FROM modalidades WHERE nome = $1`
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

// CountDependentes counts rows in related tables (funcionários, matrículas)
// that reference this modalidade. Deletion is refused while it is non-zero.
func (r *modalidadeRepository) CountDependentes(ctx context.Context, id int) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM funcionarios WHERE id_modalidade = $1)
		      + (SELECT COUNT(*) FROM matriculas WHERE id_modalidade = $1)`,
		id,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Options retrieves the minimal id+nome projection for dropdowns.
func (r *modalidadeRepository) Options(ctx context.Context) ([]model.ModalidadeOption, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nome FROM modalidades ORDER BY nome ASC`)
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

// buildModalidadeQuery appends filter predicates to a base query.
func buildModalidadeQuery(base string, f model.ModalidadeFilter) (string, []interface{}) {
	var args []interface{}

	if f.Nome != "" {
		args = append(args, "%"+f.Nome+"%")
		base += ` AND nome ILIKE $` + strconv.Itoa(len(args))
	}
	if f.Descricao != "" {
		args = append(args, "%"+f.Descricao+"%")
		base += ` AND descricao ILIKE $` + strconv.Itoa(len(args))
	}
	return base, args
}

func scanModalidades(rows pgx.Rows) ([]model.Modalidade, error) {
	var modalidades []model.Modalidade
	for rows.Next() {
		var m model.Modalidade
		if err := rows.Scan(&m.ID, &m.Nome, &m.Descricao, &m.CriadoEm, &m.AtualizadoEm); err != nil {
			return nil, err
		}
		modalidades = append(modalidades, m)
	}
	return modalidades, rows.Err()
}
