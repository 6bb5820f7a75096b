package service

import (
	"errors"
	"strings"
)

// Common service errors.
var (
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrPossuiDependentes    = errors.New("registros associados impedem a exclusão")
)

// RuleViolationError carries the itemized violations produced by a model's
// Validar() so handlers can surface them individually.
type RuleViolationError struct {
	Violations []string
}

func (e *RuleViolationError) Error() string {
	return strings.Join(e.Violations, "; ")
}
