package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/techfit/techfit-backend/internal/response"
)

// Recovery converts panics into the standard 500 envelope. The panic value
// is logged together with the request id; the client only ever sees the
// opaque message plus the correlation id in the metadata.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		reqID, _ := c.Get(response.ContextKeyRequestID)
		log.Error().
			Interface("panic", recovered).
			Interface("request_id", reqID).
			Str("path", c.Request.URL.Path).
			Msg("Panic recovered")
		response.AbortFail(c, http.StatusInternalServerError, response.ErrInterno)
	})
}
