package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrNotFound             = errors.New("not found")
	ErrConcurrencyConflict  = errors.New("concurrency conflict")
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrAlreadyExists        = errors.New("already exists")
)

// TransitionError describes a rejected status change.
type TransitionError struct {
	Entity string
	ID     string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s %s: cannot move from %s to %s", e.Entity, e.ID, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func NewTransitionError[S ~string](entity, id string, from, to S) error {
	return &TransitionError{Entity: entity, ID: id, From: string(from), To: string(to)}
}

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
