package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/techfit/techfit-backend/internal/config"
	"github.com/techfit/techfit-backend/internal/handler"
	"github.com/techfit/techfit-backend/internal/middleware"
	"github.com/techfit/techfit-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Modalidade *handler.ModalidadeHandler
	Aluno      *handler.AlunoHandler
}

// SetupRouter configures the full route table at startup. The original
// action vocabulary (listar, buscar, nome, select, contar, paginacao,
// criar, verificar-nome, atualizar, excluir) survives as path segments so
// existing frontend calls keep working.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery(log))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Unknown routes and disallowed verbs still answer with the envelope.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed, response.ErrMetodoNaoPermitido)
	})
	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrAcaoNaoReconhecida)
	})

	// No POST action takes a path segment, so a POST against one is an
	// unknown action rather than a disallowed method.
	postSegmentoNaoReconhecido := func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrAcaoNaoReconhecida)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	// Rate limiter for the login route.
	authLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, time.Minute)

	// ─── Auth Group ────────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── Modalidades Group ─────────────────────────────────────────────
	modalidades := router.Group("/api/v1/modalidades")
	{
		modalidades.GET("", handlers.Modalidade.Listar)
		modalidades.GET("/listar", handlers.Modalidade.Listar)
		modalidades.GET("/buscar", handlers.Modalidade.Buscar)
		modalidades.GET("/nome", handlers.Modalidade.BuscarPorNome)
		modalidades.GET("/select", handlers.Modalidade.Opcoes)
		modalidades.GET("/contar", handlers.Modalidade.Contar)
		modalidades.GET("/paginacao", handlers.Modalidade.Paginacao)
		modalidades.GET("/:id", handlers.Modalidade.BuscarPorSegmento)

		modalidades.POST("", handlers.Modalidade.Criar)
		modalidades.POST("/criar", handlers.Modalidade.Criar)
		modalidades.POST("/verificar-nome", handlers.Modalidade.VerificarNome)
		modalidades.POST("/:id", postSegmentoNaoReconhecido)

		modalidades.PUT("", handlers.Modalidade.Atualizar)
		modalidades.PUT("/atualizar", handlers.Modalidade.Atualizar)
		modalidades.PUT("/:id", handlers.Modalidade.AtualizarPorSegmento)

		modalidades.DELETE("", handlers.Modalidade.Excluir)
		modalidades.DELETE("/excluir", handlers.Modalidade.Excluir)
		modalidades.DELETE("/:id", handlers.Modalidade.ExcluirPorSegmento)
	}

	// ─── Alunos Group ──────────────────────────────────────────────────
	alunos := router.Group("/api/v1/alunos")
	{
		alunos.GET("", handlers.Aluno.Listar)
		alunos.GET("/listar", handlers.Aluno.Listar)
		alunos.GET("/buscar", handlers.Aluno.Buscar)
		alunos.GET("/nome", handlers.Aluno.BuscarPorNome)
		alunos.GET("/select", handlers.Aluno.Opcoes)
		alunos.GET("/contar", handlers.Aluno.Contar)
		alunos.GET("/paginacao", handlers.Aluno.Paginacao)
		alunos.GET("/:id", handlers.Aluno.BuscarPorSegmento)

		alunos.POST("", handlers.Aluno.Criar)
		alunos.POST("/criar", handlers.Aluno.Criar)
		alunos.POST("/verificar-nome", handlers.Aluno.VerificarNome)
		alunos.POST("/:id", postSegmentoNaoReconhecido)

		alunos.PUT("", handlers.Aluno.Atualizar)
		alunos.PUT("/atualizar", handlers.Aluno.Atualizar)
		alunos.PUT("/:id", handlers.Aluno.AtualizarPorSegmento)

		alunos.DELETE("", handlers.Aluno.Excluir)
		alunos.DELETE("/excluir", handlers.Aluno.Excluir)
		alunos.DELETE("/:id", handlers.Aluno.ExcluirPorSegmento)

		// Matrículas
		alunos.GET("/:id/matriculas", handlers.Aluno.ListarMatriculas)
		alunos.POST("/:id/matriculas", handlers.Aluno.Matricular)
		alunos.DELETE("/:id/matriculas/:modalidade_id", handlers.Aluno.CancelarMatricula)
	}

	return router
}
