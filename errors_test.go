package jsonshape

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeError(t *testing.T) {
	t.Run("message carries the offending kind", func(t *testing.T) {
		err := &ShapeError{Kind: KindObject}
		assert.Equal(t, "disallowed top-level shape: Object", err.Error())

		err = &ShapeError{Kind: KindArray}
		assert.Equal(t, "disallowed top-level shape: Array", err.Error())
	})

	t.Run("matches the sentinel", func(t *testing.T) {
		err := error(&ShapeError{Kind: KindObject})
		assert.ErrorIs(t, err, ErrDisallowedShape)
		assert.NotErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("reading config: %w", &ShapeError{Kind: KindArray})
		assert.ErrorIs(t, err, ErrDisallowedShape)

		var shapeErr *ShapeError
		assert.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, KindArray, shapeErr.Kind)
	})
}
