package domain

import (
	"errors"
	"strings"
)

var (
	ErrStoreNotFound   = errors.New("store not found")
	ErrTableNotFound   = errors.New("table not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrConflict          = errors.New("table is already booked for an overlapping time")
	ErrInvalidTransition = errors.New("booking status does not allow this action")
	ErrTableMismatch     = errors.New("table does not belong to the booking's store")
	ErrAlreadyAssigned   = errors.New("booking already has a table")
)

var (
	ErrForbidden = errors.New("not allowed")
)

var (
	ErrAvailabilityUnknown = errors.New("table availability could not be determined")
	ErrTableDeletePartial  = errors.New("table deletion partially completed")
)

var (
	ErrValidation = errors.New("validation error")
)

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated rule of a single input.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}

func (e *ValidationError) OrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Violations returns the violations carried by err, if any.
func Violations(err error) []Violation {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Violations
	}
	return nil
}
