package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrValidation        = errors.New("validation error")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrSlotFull          = errors.New("no capacity for selected date and time slot")
	ErrTokenTaken        = errors.New("token already in use")
	ErrConflict          = errors.New("conflict")
)

// FieldError names the input field that failed validation.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *FieldError) Unwrap() error { return ErrValidation }

// TransitionError records a rejected state-machine move.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }
