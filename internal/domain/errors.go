package domain

import (
	"errors"
	"fmt"
)

// Erros de agregação de métricas
var (
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidShape   = errors.New("invalid document shape")
	ErrDivisionByZero = errors.New("division by zero")
)

// MetricError é um erro com o contexto do registro que o originou
type MetricError struct {
	Err     error  // Erro base (ErrMissingField, ErrInvalidShape, ErrDivisionByZero)
	Section string // Seção do documento
	Field   string // Campo envolvido (quando aplicável)
	Index   int    // Índice do registro na seção, -1 quando não se aplica
	Details string
}

// Error implementa a interface error
func (e *MetricError) Error() string {
	msg := e.Err.Error()
	if e.Section != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Section)
	}
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s[%d]", msg, e.Index)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s.%s", msg, e.Field)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *MetricError) Unwrap() error {
	return e.Err
}

// NewMissingFieldError cria o erro de campo obrigatório ausente no registro index
func NewMissingFieldError(section, field string, index int) *MetricError {
	return &MetricError{
		Err:     ErrMissingField,
		Section: section,
		Field:   field,
		Index:   index,
	}
}

// NewShapeError cria um erro de formato para uma seção inteira
func NewShapeError(section, field, details string) *MetricError {
	return NewShapeErrorAt(section, field, -1, details)
}

// NewShapeErrorAt cria um erro de formato para um registro específico
func NewShapeErrorAt(section, field string, index int, details string) *MetricError {
	return &MetricError{
		Err:     ErrInvalidShape,
		Section: section,
		Field:   field,
		Index:   index,
		Details: details,
	}
}

// NewDivisionByZeroError cria o erro para agregados sem valor padrão sensato
func NewDivisionByZeroError(section, field string) *MetricError {
	return &MetricError{
		Err:     ErrDivisionByZero,
		Section: section,
		Field:   field,
		Index:   -1,
		Details: "mean over an empty section",
	}
}
