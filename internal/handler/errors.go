package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/techfit/techfit-backend/internal/repository"
	"github.com/techfit/techfit-backend/internal/response"
	"github.com/techfit/techfit-backend/internal/service"
)

// failFromError converts service/repository errors into the envelope.
// Anything unrecognized is logged with the request id and answered with an
// opaque 500 — raw error text never reaches the client.
func failFromError(c *gin.Context, err error) {
	var rve *service.RuleViolationError
	switch {
	case errors.As(err, &rve):
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidacao, rve.Violations)
	case errors.Is(err, repository.ErrNaoEncontrado):
		response.Fail(c, http.StatusNotFound, response.ErrNaoEncontrado)
	case errors.Is(err, repository.ErrNomeDuplicado):
		response.Fail(c, http.StatusConflict, response.ErrNomeDuplicado)
	case errors.Is(err, repository.ErrEmailDuplicado):
		response.Fail(c, http.StatusConflict, response.ErrEmailDuplicado)
	case errors.Is(err, repository.ErrJaMatriculado):
		response.Fail(c, http.StatusConflict, response.ErrJaMatriculado)
	case errors.Is(err, service.ErrPossuiDependentes):
		response.Fail(c, http.StatusConflict, response.ErrPossuiDependentes)
	default:
		reqID, _ := c.Get(response.ContextKeyRequestID)
		log.Error().Err(err).
			Interface("request_id", reqID).
			Str("path", c.FullPath()).
			Msg("Unhandled request error")
		response.Fail(c, http.StatusInternalServerError, response.ErrInterno)
	}
}
