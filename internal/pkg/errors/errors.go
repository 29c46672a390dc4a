package errors

import (
	"fmt"
)

// Kind - класс ошибки, определяющий HTTP статус
type Kind string

const (
	KindValidation     Kind = "VALIDATION_ERROR"
	KindNotFound       Kind = "NOT_FOUND"
	KindUpstream       Kind = "UPSTREAM_ERROR"
	KindUpstreamFormat Kind = "UPSTREAM_FORMAT_ERROR"
	KindInternal       Kind = "INTERNAL_ERROR"
)

// AppError - ошибка, которую можно отдать клиенту. Message уходит наружу,
// причина (cause) только в лог.
type AppError struct {
	Kind       Kind   `json:"-"`
	Message    string `json:"error"`
	StatusCode int    `json:"-"`
	cause      error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is сравнивает по Kind и Message, чтобы копии с разными причинами совпадали с шаблоном
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func New(kind Kind, message string, statusCode int) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithCause возвращает копию ошибки с причиной; шаблон не мутируется
func (e *AppError) WithCause(cause error) *AppError {
	cp := *e
	cp.cause = cause
	return &cp
}
