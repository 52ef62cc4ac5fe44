package control

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every coordinate parse failure.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputMessage is what the user is told when a field does not parse.
const InvalidInputMessage = "Enter integers!"

// InputError describes a coordinate field that failed to parse.
type InputError struct {
	Field Field
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("field %s: %q is not an integer: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }
