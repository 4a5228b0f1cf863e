package usecase

import (
	"errors"
	"fmt"
	"strings"

	"resort-admin/internal/data/repository"
	"resort-admin/pkg/utils"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = repository.ErrNotFound
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTransaction  = errors.New("transaction failed")
)

// ValidationError carries the per-field messages so handlers can return them.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// validate runs struct validation and wraps failures in a ValidationError.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// Message returns the client-facing text of a wrapped sentinel error,
// without the sentinel prefix.
func Message(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrUnauthorized} {
		if errors.Is(err, sentinel) {
			if trimmed, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
				return trimmed
			}
		}
	}
	return msg
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s not found", ErrNotFound, what)
}

func conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
