package models

import "errors"

// Error taxonomy shared by every layer. Layer-specific errors wrap one of
// these so callers can classify with errors.Is.
var (
	// ErrNotFound indicates that a referenced task, label or task list does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a create would violate a uniqueness rule
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalid indicates input that fails validation
	ErrInvalid = errors.New("invalid input")
)

// validationError is a fixed message that matches ErrInvalid
type validationError string

func (e validationError) Error() string { return string(e) }

func (e validationError) Is(target error) bool { return target == ErrInvalid }

// Invalid returns a validation error with the given message.
// errors.Is reports true for both the returned value and ErrInvalid.
func Invalid(msg string) error {
	return validationError(msg)
}
