package model

import (
	"fmt"
	"strings"
	"time"
)

// SexoAluno is the student's registered sex.
type SexoAluno string

const (
	SexoMasculino SexoAluno = "M"
	SexoFeminino  SexoAluno = "F"
)

// StatusAluno tracks whether the student is an active member.
type StatusAluno string

const (
	StatusAtivo   StatusAluno = "ativo"
	StatusInativo StatusAluno = "inativo"
)

// Field ceilings for aluno, mirrored by the schema.
const (
	NomeAlunoMax     = 120
	EmailAlunoMax    = 255
	TelefoneAlunoMax = 20
)

// Aluno represents a gym student/member.
type Aluno struct {
	ID           int         `json:"id_aluno"`
	Nome         string      `json:"nome_aluno"`
	Email        string      `json:"email_aluno"`
	Telefone     string      `json:"telefone_aluno"`
	Sexo         SexoAluno   `json:"sexo_aluno"`
	Status       StatusAluno `json:"status_aluno"`
	CriadoEm     time.Time   `json:"criado_em"`
	AtualizadoEm time.Time   `json:"atualizado_em"`
}

// Normalizar trims surrounding whitespace from caller-supplied fields.
func (a *Aluno) Normalizar() {
	a.Nome = strings.TrimSpace(a.Nome)
	a.Email = strings.TrimSpace(a.Email)
	a.Telefone = strings.TrimSpace(a.Telefone)
}

// Validar checks the candidate record and returns itemized violations.
// An empty slice means valid.
func (a *Aluno) Validar() []string {
	var violations []string

	if a.Nome == "" {
		violations = append(violations, "O nome do aluno é obrigatório.")
	}
	if len(a.Nome) > NomeAlunoMax {
		violations = append(violations, fmt.Sprintf("O nome do aluno deve ter no máximo %d caracteres.", NomeAlunoMax))
	}
	if len(a.Email) > EmailAlunoMax {
		violations = append(violations, fmt.Sprintf("O e-mail do aluno deve ter no máximo %d caracteres.", EmailAlunoMax))
	}
	if len(a.Telefone) > TelefoneAlunoMax {
		violations = append(violations, fmt.Sprintf("O telefone do aluno deve ter no máximo %d caracteres.", TelefoneAlunoMax))
	}
	if a.Sexo != "" && a.Sexo != SexoMasculino && a.Sexo != SexoFeminino {
		violations = append(violations, "O sexo do aluno deve ser M ou F.")
	}
	if a.Status != "" && a.Status != StatusAtivo && a.Status != StatusInativo {
		violations = append(violations, "O status do aluno deve ser ativo ou inativo.")
	}

	return violations
}

// AlunoFilter narrows list/count queries. Empty fields are ignored.
type AlunoFilter struct {
	Nome   string
	Email  string
	Status string
}

// CreateAlunoRequest is the payload for creating an aluno.
type CreateAlunoRequest struct {
	Nome     string      `json:"nome_aluno" binding:"required,max=120"`
	Email    string      `json:"email_aluno" binding:"required,email,max=255"`
	Telefone string      `json:"telefone_aluno" binding:"omitempty,max=20"`
	Sexo     SexoAluno   `json:"sexo_aluno" binding:"required,oneof=M F"`
	Status   StatusAluno `json:"status_aluno" binding:"omitempty,oneof=ativo inativo"`
}

// UpdateAlunoRequest is the payload for partially updating an aluno.
// Only non-nil fields overwrite the stored record.
type UpdateAlunoRequest struct {
	ID       *int         `json:"id_aluno"`
	Nome     *string      `json:"nome_aluno" binding:"omitempty,max=120"`
	Email    *string      `json:"email_aluno" binding:"omitempty,email,max=255"`
	Telefone *string      `json:"telefone_aluno" binding:"omitempty,max=20"`
	Sexo     *SexoAluno   `json:"sexo_aluno" binding:"omitempty,oneof=M F"`
	Status   *StatusAluno `json:"status_aluno" binding:"omitempty,oneof=ativo inativo"`
}

// VerificarNomeAlunoRequest probes name uniqueness without writing.
type VerificarNomeAlunoRequest struct {
	Nome      string `json:"nome_aluno" binding:"required,max=120"`
	ExcluirID *int   `json:"id_aluno"`
}

// Matricula is an enrollment of an aluno in a modalidade.
type Matricula struct {
	AlunoID        int       `json:"id_aluno"`
	ModalidadeID   int       `json:"id_modalidade"`
	NomeModalidade string    `json:"nome_modalidade"`
	CriadoEm       time.Time `json:"criado_em"`
}

// CreateMatriculaRequest is the payload for enrolling an aluno.
type CreateMatriculaRequest struct {
	ModalidadeID int `json:"id_modalidade" binding:"required"`
}
