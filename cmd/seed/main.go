package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/techfit/techfit-backend/internal/config"
	"github.com/techfit/techfit-backend/internal/database"
	"github.com/techfit/techfit-backend/internal/logger"
	"github.com/techfit/techfit-backend/internal/model"
	"github.com/techfit/techfit-backend/internal/repository"
)

// Dev/demo seeding. Safe to re-run: existing rows are skipped on conflict.
func main() {
	var totalAlunos int
	flag.IntVar(&totalAlunos, "alunos", 30, "Number of fake alunos to create")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	modalidadeRepo := repository.NewModalidadeRepository(pool)
	alunoRepo := repository.NewAlunoRepository(pool)

	// ─── Modalidades ───────────────────────────────────────────────────
	modalidades := []model.Modalidade{
		{Nome: "Musculação", Descricao: "Treinamento de força com pesos livres e máquinas."},
		{Nome: "Pilates", Descricao: "Fortalecimento do core e flexibilidade."},
		{Nome: "Crossfit", Descricao: "Treino funcional de alta intensidade."},
		{Nome: "Natação", Descricao: "Aulas de natação para todos os níveis."},
		{Nome: "Spinning", Descricao: "Ciclismo indoor com acompanhamento musical."},
		{Nome: "Muay Thai", Descricao: "Arte marcial tailandesa, condicionamento e defesa pessoal."},
	}

	var modalidadeIDs []int
	for i := range modalidades {
		m := &modalidades[i]
		if err := modalidadeRepo.Create(ctx, m); err != nil {
			if errors.Is(err, repository.ErrNomeDuplicado) {
				log.Info().Str("nome", m.Nome).Msg("Modalidade already exists, skipping")
				continue
			}
			log.Fatal().Err(err).Str("nome", m.Nome).Msg("Failed to create modalidade")
		}
		modalidadeIDs = append(modalidadeIDs, m.ID)
		log.Info().Int("id", m.ID).Str("nome", m.Nome).Msg("Modalidade created")
	}

	// ─── Alunos ────────────────────────────────────────────────────────
	gofakeit.Seed(0)

	created := 0
	for i := 0; i < totalAlunos; i++ {
		sexo := model.SexoMasculino
		nome := gofakeit.Name()
		if gofakeit.Bool() {
			sexo = model.SexoFeminino
		}

		status := model.StatusAtivo
		if gofakeit.Number(1, 10) > 8 {
			status = model.StatusInativo
		}

		a := &model.Aluno{
			Nome:     nome,
			Email:    fmt.Sprintf("%s%d@%s", strings.ToLower(gofakeit.Username()), gofakeit.Number(1, 999), gofakeit.DomainName()),
			Telefone: gofakeit.Numerify("(##) #####-####"),
			Sexo:     sexo,
			Status:   status,
		}

		if err := alunoRepo.Create(ctx, a); err != nil {
			if errors.Is(err, repository.ErrNomeDuplicado) || errors.Is(err, repository.ErrEmailDuplicado) {
				continue
			}
			log.Fatal().Err(err).Str("nome", a.Nome).Msg("Failed to create aluno")
		}
		created++

		// Enroll roughly two thirds of alunos in a random modalidade.
		if len(modalidadeIDs) > 0 && gofakeit.Number(1, 3) != 3 {
			modalidadeID := modalidadeIDs[gofakeit.Number(0, len(modalidadeIDs)-1)]
			if _, err := alunoRepo.CreateMatricula(ctx, a.ID, modalidadeID); err != nil &&
				!errors.Is(err, repository.ErrJaMatriculado) {
				log.Fatal().Err(err).Int("id_aluno", a.ID).Msg("Failed to create matrícula")
			}
		}
	}

	log.Info().Int("alunos", created).Msg("Seeding complete")
}
