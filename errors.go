package jsonshape

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the parse entry points. Errors raised by the
// underlying JSON library (such as *jsontext.SyntacticError) are returned
// unchanged rather than wrapped.
var (
	// ErrDisallowedShape matches any *ShapeError via errors.Is.
	ErrDisallowedShape = errors.New("disallowed top-level shape")

	// ErrEmptyInput is returned when the input contains no JSON value.
	ErrEmptyInput = errors.New("input is empty or contains only whitespace")

	// ErrTrailingData is returned when more than one JSON value is found
	// at the top level.
	ErrTrailingData = errors.New("unexpected data after top-level JSON value")
)

// ShapeError reports a full JSON value whose top-level shape is excluded
// from the target restricted type. Kind is KindObject for either type, or
// KindArray when converting to a Scalar.
type ShapeError struct {
	Kind Kind
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("disallowed top-level shape: %s", e.Kind)
}

// Is reports whether target matches this error, so that
// errors.Is(err, ErrDisallowedShape) holds for every *ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrDisallowedShape
}
