package errdef

import (
	"errors"
	"fmt"
)

// NewNotFound creates an error representing an entity that could not be found
// among the active (non-deregistered) records.
func NewNotFound(format string, a ...any) error {
	return notFound{fmt.Errorf(format, a...)}
}

type notFound struct{ error }

// IsNotFound returns true if err is an error representing an entity that could not be found and false otherwise.
func IsNotFound(err error) bool {
	var e notFound
	return errors.As(err, &e)
}

func NewBadRequest(format string, a ...any) error {
	return badRequest{fmt.Errorf(format, a...)}
}

type badRequest struct{ error }

func IsBadRequest(err error) bool {
	var e badRequest
	return errors.As(err, &e)
}

// NewValidation creates an error representing a request that is well formed
// but fails a domain precondition, such as requesting a checks execution for
// a cluster with no checks selected.
func NewValidation(format string, a ...any) error {
	return validation{fmt.Errorf(format, a...)}
}

type validation struct{ error }

func IsValidation(err error) bool {
	var e validation
	return errors.As(err, &e)
}

// NewOperationNotFound creates an error representing an operation kind the
// dispatcher does not know about.
func NewOperationNotFound(format string, a ...any) error {
	return operationNotFound{fmt.Errorf(format, a...)}
}

type operationNotFound struct{ error }

func IsOperationNotFound(err error) bool {
	var e operationNotFound
	return errors.As(err, &e)
}

// NewForbidden creates an error representing an operation the engine refused
// to run against its targets.
func NewForbidden(format string, a ...any) error {
	return forbidden{fmt.Errorf(format, a...)}
}

type forbidden struct{ error }

func IsForbidden(err error) bool {
	var e forbidden
	return errors.As(err, &e)
}

func NewDuplicated(format string, a ...any) error {
	return duplicated{fmt.Errorf(format, a...)}
}

type duplicated struct{ error }

func IsDuplicated(err error) bool {
	var e duplicated
	return errors.As(err, &e)
}

func NewUnsupportedMediaType(format string, a ...any) error {
	return unsupportedMediaType{fmt.Errorf(format, a...)}
}

type unsupportedMediaType struct{ error }

func IsUnsupportedMediaType(err error) bool {
	var e unsupportedMediaType
	return errors.As(err, &e)
}
