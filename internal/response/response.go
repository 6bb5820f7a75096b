package response

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the standardized API response envelope. Every handler emits
// exactly one of these per request.
type Response struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Errors     []string          `json:"errors,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Metadata   Metadata          `json:"metadata"`
}

// Pagination holds pagination information.
type Pagination struct {
	Page       int `json:"pagina_atual"`
	PerPage    int `json:"itens_por_pagina"`
	TotalItems int `json:"total_itens"`
	TotalPages int `json:"total_paginas"`
}

// Metadata includes request tracing and timing.
type Metadata struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends a successful JSON response with the given status code and data.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success:  true,
		Message:  message,
		Data:     data,
		Metadata: buildMetadata(c),
	})
}

// SuccessWithPagination sends a successful response with pagination metadata.
func SuccessWithPagination(c *gin.Context, statusCode int, message string, data interface{}, pagination *Pagination) {
	c.JSON(statusCode, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
		Metadata:   buildMetadata(c),
	})
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, Response{
		Success:  false,
		Message:  GetMessage(code),
		Metadata: buildMetadata(c),
	})
}

// FailWithFields sends an error response with field-level validation details
// keyed by JSON field name.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, Response{
		Success:  false,
		Message:  GetMessage(code),
		Fields:   fields,
		Metadata: buildMetadata(c),
	})
}

// FailWithErrors sends an error response carrying itemized rule violations.
func FailWithErrors(c *gin.Context, statusCode int, code ErrCode, violations []string) {
	c.JSON(statusCode, Response{
		Success:  false,
		Message:  GetMessage(code),
		Errors:   violations,
		Metadata: buildMetadata(c),
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, Response{
		Success:  false,
		Message:  GetMessage(code),
		Metadata: buildMetadata(c),
	})
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

func buildMetadata(c *gin.Context) Metadata {
	reqID, _ := c.Get(ContextKeyRequestID)
	id, ok := reqID.(string)
	if !ok || id == "" {
		id = uuid.New().String() // Fallback if middleware not applied
	}
	return Metadata{
		RequestID: id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
