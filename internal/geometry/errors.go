package geometry

import (
	"errors"
	"fmt"
)

// ErrNegativeInput is wrapped by every InputError.
var ErrNegativeInput = errors.New("negative plane input")

// InputError is returned by a strict PlaneBuilder for the first negative
// field it finds.
type InputError struct {
	Field string
	Value float32
}

func (e *InputError) Error() string {
	return fmt.Sprintf("plane %s: %g: %v", e.Field, e.Value, ErrNegativeInput)
}

func (e *InputError) Unwrap() error { return ErrNegativeInput }
