package utils

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ValidationError reports that one or more fields failed format or required
// checks before persistence. Err is typically an ozzo validation.Errors map
// keyed by field name.
type ValidationError struct {
	Entity string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %v", e.Entity, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ConstraintViolation reports a uniqueness conflict at the storage layer.
type ConstraintViolation struct {
	Entity string
	Field  string
}

func (e *ConstraintViolation) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s violates a unique constraint on %s", e.Entity, e.Field)
	}
	return fmt.Sprintf("%s violates a unique constraint", e.Entity)
}

// DoubleBookingError is the scheduling specialization of a constraint
// violation: a second appointment for the same doctor, date and start time.
type DoubleBookingError struct {
	DoctorID  string
	Date      string
	StartTime string
}

func (e *DoubleBookingError) Error() string {
	return fmt.Sprintf("doctor %s is already booked on %s at %s", e.DoctorID, e.Date, e.StartTime)
}

// ReferentialIntegrityError reports a delete blocked by protected references.
type ReferentialIntegrityError struct {
	Entity string
	ID     string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s %s is referenced by dependent records and cannot be deleted", e.Entity, e.ID)
}

// NotFoundError reports a failed lookup by identifier.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// TranslateDBError maps gorm's translated storage errors onto the error
// taxonomy. Unique-index names are scanned out of the driver message on a
// best-effort basis so the caller sees the offending field.
func TranslateDBError(entity, id string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &NotFoundError{Entity: entity, ID: id}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintViolation{Entity: entity, Field: constraintField(err)}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ReferentialIntegrityError{Entity: entity, ID: id}
	}
	return err
}

// constraintField guesses the conflicting column from the driver message.
func constraintField(err error) string {
	msg := strings.ToLower(err.Error())
	for _, field := range []string{"cpf", "crm", "email", "appointment_id"} {
		if strings.Contains(msg, field) {
			return field
		}
	}
	return ""
}
