package model

import "time"

// Funcionario represents an employee credential record. It is read-only from
// the API's perspective: rows are created through cmd/create-funcionario,
// never through an endpoint.
type Funcionario struct {
	ID           int       `json:"id_funcionario"`
	Nome         string    `json:"nome_funcionario"`
	LoginRede    string    `json:"login_rede"`
	SenhaHash    string    `json:"-"`
	ModalidadeID *int      `json:"id_modalidade,omitempty"`
	CriadoEm     time.Time `json:"criado_em"`
}

// LoginRequest is the payload for employee authentication.
type LoginRequest struct {
	Usuario string `json:"usuario" binding:"required,min=2,max=60"`
	Senha   string `json:"senha" binding:"required,min=4,max=128"`
}
