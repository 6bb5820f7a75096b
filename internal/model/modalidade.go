package model

import (
	"fmt"
	"strings"
	"time"
)

// Length ceilings for modalidade fields, mirrored by the database schema.
const (
	NomeModalidadeMax      = 120
	DescricaoModalidadeMax = 1000
)

// Modalidade represents a gym activity category (musculação, pilates, ...).
type Modalidade struct {
	ID           int       `json:"id_modalidade"`
	Nome         string    `json:"nome_modalidade"`
	Descricao    string    `json:"descricao_modalidade"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// Normalizar trims surrounding whitespace from the caller-supplied fields.
func (m *Modalidade) Normalizar() {
	m.Nome = strings.TrimSpace(m.Nome)
	m.Descricao = strings.TrimSpace(m.Descricao)
}

// Validar checks the candidate record and returns itemized human-readable
// violations. An empty slice means the record is valid. Uniqueness is not
// checked here — it needs a database round-trip.
func (m *Modalidade) Validar() []string {
	var violations []string

	if m.Nome == "" {
		violations = append(violations, "O nome da modalidade é obrigatório.")
	}
	if len(m.Nome) > NomeModalidadeMax {
		violations = append(violations, fmt.Sprintf("O nome da modalidade deve ter no máximo %d caracteres.", NomeModalidadeMax))
	}
	if len(m.Descricao) > DescricaoModalidadeMax {
		violations = append(violations, fmt.Sprintf("A descrição da modalidade deve ter no máximo %d caracteres.", DescricaoModalidadeMax))
	}

	return violations
}

// ModalidadeOption is the minimal id+nome projection used by dropdowns.
type ModalidadeOption struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// ModalidadeFilter narrows list/count queries. Empty fields are ignored.
type ModalidadeFilter struct {
	Nome      string
	Descricao string
}

// CreateModalidadeRequest is the payload for creating a modalidade.
type CreateModalidadeRequest struct {
	Nome      string `json:"nome_modalidade" binding:"required,max=120"`
	Descricao string `json:"descricao_modalidade" binding:"omitempty,max=1000"`
}

// UpdateModalidadeRequest is the payload for partially updating a modalidade.
// Only non-nil fields overwrite the stored record. The ID may come from the
// body, the query string or the path segment.
type UpdateModalidadeRequest struct {
	ID        *int    `json:"id_modalidade"`
	Nome      *string `json:"nome_modalidade" binding:"omitempty,max=120"`
	Descricao *string `json:"descricao_modalidade" binding:"omitempty,max=1000"`
}

// VerificarNomeRequest probes name uniqueness without writing, optionally
// excluding one record (the update form's own row).
type VerificarNomeRequest struct {
	Nome      string `json:"nome_modalidade" binding:"required,max=120"`
	ExcluirID *int   `json:"id_modalidade"`
}
