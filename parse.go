package jsonshape

import (
	"errors"
	"io"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// ParseScalar parses JSON text into a Scalar. The input must contain
// exactly one JSON value; syntax errors from the underlying parser are
// returned unchanged, and a top-level object or array fails with a
// *ShapeError.
func ParseScalar(input string) (Scalar, error) {
	return DecodeScalar(strings.NewReader(input))
}

// DecodeScalar reads a single JSON value from r into a Scalar.
func DecodeScalar(r io.Reader) (Scalar, error) {
	v, err := readOne(jsontext.NewDecoder(r))
	if err != nil {
		return Scalar{}, err
	}
	return scalarFromCompact(v)
}

// ParseScalarOrArray parses JSON text into a ScalarOrArray. The input
// must contain exactly one JSON value; syntax errors from the underlying
// parser are returned unchanged, and a top-level object fails with a
// *ShapeError.
func ParseScalarOrArray(input string) (ScalarOrArray, error) {
	return DecodeScalarOrArray(strings.NewReader(input))
}

// DecodeScalarOrArray reads a single JSON value from r into a
// ScalarOrArray.
func DecodeScalarOrArray(r io.Reader) (ScalarOrArray, error) {
	v, err := readOne(jsontext.NewDecoder(r))
	if err != nil {
		return ScalarOrArray{}, err
	}
	return ScalarOrArrayFromValue(v)
}

// readOne reads exactly one JSON value from dec, rejecting empty input
// and anything following the first value.
func readOne(dec *jsontext.Decoder) (jsontext.Value, error) {
	v, err := dec.ReadValue()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, err
	}
	// The returned value aliases the decoder's buffer; copy it before
	// reading further.
	v = append(jsontext.Value(nil), v...)
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, ErrTrailingData
		}
		return nil, err
	}
	return v, nil
}
