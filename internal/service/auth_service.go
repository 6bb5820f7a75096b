package service

import (
	"context"
	"errors"

	"github.com/techfit/techfit-backend/internal/config"
	"github.com/techfit/techfit-backend/internal/model"
	"github.com/techfit/techfit-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies funcionário credentials. No token or session is
// issued: the login contract is a single yes/no check and the frontend keeps
// only the username.
type AuthService struct {
	cfg             *config.Config
	funcionarioRepo repository.FuncionarioRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, funcionarioRepo repository.FuncionarioRepository) *AuthService {
	return &AuthService{cfg: cfg, funcionarioRepo: funcionarioRepo}
}

// HashSenha hashes a password with the configured bcrypt cost.
func (s *AuthService) HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), s.cfg.BcryptCost)
	return string(hash), err
}

// Login resolves the funcionário by network login and compares the password
// against the stored bcrypt hash. Unknown user and wrong password both
// return ErrCredenciaisInvalidas so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, usuario, senha string) (*model.Funcionario, error) {
	f, err := s.funcionarioRepo.GetByLogin(ctx, usuario)
	if err != nil {
		if errors.Is(err, repository.ErrNaoEncontrado) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(f.SenhaHash), []byte(senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	return f, nil
}
