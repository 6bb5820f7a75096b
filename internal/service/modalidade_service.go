package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/techfit/techfit-backend/internal/config"
	"github.com/techfit/techfit-backend/internal/model"
	"github.com/techfit/techfit-backend/internal/repository"
	"github.com/techfit/techfit-backend/internal/response"
)

// ModalidadeService handles modalidade business logic.
type ModalidadeService interface {
	Listar(ctx context.Context, f model.ModalidadeFilter) ([]model.Modalidade, error)
	BuscarPorID(ctx context.Context, id int) (*model.Modalidade, error)
	BuscarPorNome(ctx context.Context, nome string) ([]model.Modalidade, error)
	Opcoes(ctx context.Context) ([]model.ModalidadeOption, error)
	Contar(ctx context.Context, f model.ModalidadeFilter) (int, error)
	ListarPaginado(ctx context.Context, f model.ModalidadeFilter, pagina, itens int) ([]model.Modalidade, *response.Pagination, error)
	Criar(ctx context.Context, req model.CreateModalidadeRequest) (*model.Modalidade, error)
	VerificarNome(ctx context.Context, nome string, excluirID *int) (bool, error)
	Atualizar(ctx context.Context, id int, req model.UpdateModalidadeRequest) (*model.Modalidade, error)
	Excluir(ctx context.Context, id int) error
}

type modalidadeService struct {
	repo repository.ModalidadeRepository
	cfg  *config.Config
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewModalidadeService creates a new ModalidadeService. rdb may be nil, in
// which case the options cache is skipped entirely.
func NewModalidadeService(repo repository.ModalidadeRepository, cfg *config.Config, rdb *redis.Client, log zerolog.Logger) ModalidadeService {
	return &modalidadeService{repo: repo, cfg: cfg, rdb: rdb, log: log}
}

func (s *modalidadeService) Listar(ctx context.Context, f model.ModalidadeFilter) ([]model.Modalidade, error) {
	modalidades, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if modalidades == nil {
		modalidades = []model.Modalidade{}
	}
	return modalidades, nil
}

func (s *modalidadeService) BuscarPorID(ctx context.Context, id int) (*model.Modalidade, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *modalidadeService) BuscarPorNome(ctx context.Context, nome string) ([]model.Modalidade, error) {
	modalidades, err := s.repo.SearchByNome(ctx, nome)
	if err != nil {
		return nil, err
	}
	if modalidades == nil {
		modalidades = []model.Modalidade{}
	}
	return modalidades, nil
}

// Opcoes returns the id+nome projection, served from Redis when warm.
// Cache failures degrade to a direct query, never to a request failure.
func (s *modalidadeService) Opcoes(ctx context.Context) ([]model.ModalidadeOption, error) {
	key := config.CacheKey.OptionsKey("modalidades")

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var options []model.ModalidadeOption
			if jsonErr := json.Unmarshal([]byte(cached), &options); jsonErr == nil {
				return options, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("Options cache read failed")
		}
	}

	options, err := s.repo.Options(ctx)
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []model.ModalidadeOption{}
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(options); err == nil {
			if err := s.rdb.Set(ctx, key, payload, s.cfg.OptionsCacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("Options cache write failed")
			}
		}
	}

	return options, nil
}

func (s *modalidadeService) Contar(ctx context.Context, f model.ModalidadeFilter) (int, error) {
	return s.repo.Count(ctx, f)
}

// ListarPaginado returns one 1-indexed page plus pagination metadata.
func (s *modalidadeService) ListarPaginado(ctx context.Context, f model.ModalidadeFilter, pagina, itens int) ([]model.Modalidade, *response.Pagination, error) {
	if pagina < 1 {
		pagina = 1
	}
	if itens < 1 {
		itens = 10
	}
	if itens > 100 {
		itens = 100
	}

	limit := itens
	offset := (pagina - 1) * itens

	modalidades, total, err := s.repo.ListPaginated(ctx, f, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	if modalidades == nil {
		modalidades = []model.Modalidade{}
	}

	pagination := &response.Pagination{
		Page:       pagina,
		PerPage:    itens,
		TotalItems: total,
		TotalPages: (total + itens - 1) / itens,
	}

	return modalidades, pagination, nil
}

// Criar validates and persists a new modalidade. The schema's unique
// constraint is the authoritative name guard; the repository surfaces its
// violation as repository.ErrNomeDuplicado.
func (s *modalidadeService) Criar(ctx context.Context, req model.CreateModalidadeRequest) (*model.Modalidade, error) {
	m := &model.Modalidade{
		Nome:      req.Nome,
		Descricao: req.Descricao,
	}
	m.Normalizar()

	if violations := m.Validar(); len(violations) > 0 {
		return nil, &RuleViolationError{Violations: violations}
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.invalidateOptions(ctx)
	return m, nil
}

// VerificarNome probes name uniqueness without writing.
func (s *modalidadeService) VerificarNome(ctx context.Context, nome string, excluirID *int) (bool, error) {
	return s.repo.NomeExiste(ctx, nome, excluirID)
}

// Atualizar overlays the provided fields onto the stored record, re-validates
// the whole record and persists it. Unspecified fields stay unchanged.
func (s *modalidadeService) Atualizar(ctx context.Context, id int, req model.UpdateModalidadeRequest) (*model.Modalidade, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		m.Nome = *req.Nome
	}
	if req.Descricao != nil {
		m.Descricao = *req.Descricao
	}
	m.Normalizar()

	if violations := m.Validar(); len(violations) > 0 {
		return nil, &RuleViolationError{Violations: violations}
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.invalidateOptions(ctx)
	return m, nil
}

// Excluir removes a modalidade unless funcionários or matrículas still
// reference it. The check is an explicit pre-query; the schema's RESTRICT
// foreign keys are the backstop.
func (s *modalidadeService) Excluir(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	dependentes, err := s.repo.CountDependentes(ctx, id)
	if err != nil {
		return err
	}
	if dependentes > 0 {
		return ErrPossuiDependentes
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateOptions(ctx)
	return nil
}

func (s *modalidadeService) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	key := config.CacheKey.OptionsKey("modalidades")
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Options cache invalidation failed")
	}
}
