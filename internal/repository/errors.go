package repository

import "errors"

// Sentinel errors shared by all repositories. Services and handlers match
// these with errors.Is instead of inspecting driver errors.
var (
	ErrNaoEncontrado  = errors.New("registro não encontrado")
	ErrNomeDuplicado  = errors.New("nome já cadastrado")
	ErrEmailDuplicado = errors.New("e-mail já cadastrado")
	ErrJaMatriculado  = errors.New("aluno já matriculado nesta modalidade")
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint hits.
// The schema's UNIQUE constraints are the authoritative uniqueness guard;
// translating the violation here closes the check-then-write race.
const pgUniqueViolation = "23505"
