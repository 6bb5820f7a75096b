package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/techfit/techfit-backend/internal/model"
	"github.com/techfit/techfit-backend/internal/response"
	"github.com/techfit/techfit-backend/internal/service"
	"github.com/techfit/techfit-backend/internal/validator"
)

// AuthHandler handles the employee login endpoint.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /api/v1/auth/login
// Validates usuario + senha against the stored bcrypt hash. Both an unknown
// user and a wrong password answer with the same generic message. No token
// or session is issued.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidacao, fields)
		return
	}

	f, err := h.authService.Login(c.Request.Context(), strings.TrimSpace(req.Usuario), req.Senha)
	if err != nil {
		if errors.Is(err, service.ErrCredenciaisInvalidas) {
			response.Fail(c, http.StatusUnauthorized, response.ErrCredenciaisInvalidas)
			return
		}
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login realizado com sucesso", gin.H{
		"usuario":          f.LoginRede,
		"nome_funcionario": f.Nome,
	})
}
