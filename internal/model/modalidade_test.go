package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModalidadeNormalizar(t *testing.T) {
	m := Modalidade{Nome: "  Musculação  ", Descricao: " Treino de força \n"}
	m.Normalizar()

	assert.Equal(t, "Musculação", m.Nome)
	assert.Equal(t, "Treino de força", m.Descricao)
}

func TestModalidadeValidar(t *testing.T) {
	tests := []struct {
		name       string
		modalidade Modalidade
		violations int
	}{
		{
			name:       "valid",
			modalidade: Modalidade{Nome: "Pilates", Descricao: "Fortalecimento do core"},
			violations: 0,
		},
		{
			name:       "valid without descricao",
			modalidade: Modalidade{Nome: "Crossfit"},
			violations: 0,
		},
		{
			name:       "empty nome",
			modalidade: Modalidade{Descricao: "sem nome"},
			violations: 1,
		},
		{
			name:       "nome too long",
			modalidade: Modalidade{Nome: strings.Repeat("a", NomeModalidadeMax+1)},
			violations: 1,
		},
		{
			name:       "descricao too long",
			modalidade: Modalidade{Nome: "Natação", Descricao: strings.Repeat("a", DescricaoModalidadeMax+1)},
			violations: 1,
		},
		{
			name:       "multiple violations accumulate",
			modalidade: Modalidade{Nome: "", Descricao: strings.Repeat("a", DescricaoModalidadeMax+1)},
			violations: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.modalidade.Validar(), tt.violations)
		})
	}
}

func TestModalidadeValidarNomeAtLimit(t *testing.T) {
	m := Modalidade{Nome: strings.Repeat("a", NomeModalidadeMax)}
	assert.Empty(t, m.Validar())
}
