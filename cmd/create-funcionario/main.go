package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/techfit/techfit-backend/internal/config"
	"github.com/techfit/techfit-backend/internal/database"
	"github.com/techfit/techfit-backend/internal/logger"
	"github.com/techfit/techfit-backend/internal/model"
	"github.com/techfit/techfit-backend/internal/repository"
	"github.com/techfit/techfit-backend/internal/service"
	"golang.org/x/term"
)

// Funcionário credentials are created only through this command; the API has
// no endpoint that writes them.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	funcionarioRepo := repository.NewFuncionarioRepository(pool)
	authService := service.NewAuthService(cfg, funcionarioRepo)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Criar Novo Funcionário ===")

	// Nome
	fmt.Print("Nome: ")
	nome, _ := reader.ReadString('\n')
	nome = strings.TrimSpace(nome)
	if nome == "" {
		fmt.Println("Erro: o nome é obrigatório")
		return
	}

	// Login de rede
	fmt.Print("Login de rede: ")
	login, _ := reader.ReadString('\n')
	login = strings.TrimSpace(login)
	if login == "" {
		fmt.Println("Erro: o login de rede é obrigatório")
		return
	}

	// Senha
	fmt.Print("Senha: ")
	byteSenha, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nErro ao ler a senha")
		return
	}
	senha := string(byteSenha)
	fmt.Println() // Newline after password input
	if len(senha) < 6 {
		fmt.Println("Erro: a senha deve ter pelo menos 6 caracteres")
		return
	}

	// Modalidade (opcional)
	fmt.Print("ID da modalidade (opcional, Enter para pular): ")
	rawModalidade, _ := reader.ReadString('\n')
	rawModalidade = strings.TrimSpace(rawModalidade)

	var modalidadeID *int
	if rawModalidade != "" {
		id, err := strconv.Atoi(rawModalidade)
		if err != nil {
			fmt.Println("Erro: ID da modalidade inválido")
			return
		}
		modalidadeID = &id
	}

	// ─── Create ────────────────────────────────────────────────────────
	hash, err := authService.HashSenha(senha)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	f := &model.Funcionario{
		Nome:         nome,
		LoginRede:    login,
		SenhaHash:    hash,
		ModalidadeID: modalidadeID,
	}

	if err := funcionarioRepo.Create(ctx, f); err != nil {
		log.Fatal().Err(err).Msg("Failed to create funcionário")
	}

	fmt.Printf("Funcionário criado com sucesso (id=%d, login=%s)\n", f.ID, f.LoginRede)
}
