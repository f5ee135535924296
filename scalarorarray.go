package jsonshape

import (
	"bytes"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// ScalarOrArray is a JSON value that is never an object at the top level:
// a null, boolean, number, string, or array.
//
// Array elements are full jsontext.Value values and are not restricted
// further, so an array may contain objects even though a bare top-level
// object is rejected.
//
// The zero value is a JSON null. ScalarOrArray is not comparable with ==
// because of the array payload; use Equal instead.
type ScalarOrArray struct {
	scalar  Scalar
	elems   []jsontext.Value
	isArray bool
}

// OrArray widens a Scalar into a ScalarOrArray holding the same value.
func (s Scalar) OrArray() ScalarOrArray {
	return ScalarOrArray{scalar: s}
}

// Array returns a JSON array with the given elements. Each element must
// be a single valid JSON value of any shape, including objects; elements
// are copied and compacted. The error is the underlying library's, for
// elements that are not valid JSON.
func Array(elems ...jsontext.Value) (ScalarOrArray, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return ScalarOrArray{}, err
	}
	for _, e := range elems {
		if err := enc.WriteValue(e); err != nil {
			return ScalarOrArray{}, err
		}
	}
	if err := enc.WriteToken(jsontext.EndArray); err != nil {
		return ScalarOrArray{}, err
	}
	return ScalarOrArrayFromValue(buf.Bytes())
}

// ScalarOrArrayFromValue converts a full JSON value into a ScalarOrArray.
// It fails with a *ShapeError if the top-level shape of v is an object,
// and passes through the underlying library's error if v is not valid
// JSON.
//
// The input is copied; v is retained in compact form, with its number and
// string token text unchanged.
func ScalarOrArrayFromValue(v jsontext.Value) (ScalarOrArray, error) {
	c := append(jsontext.Value(nil), v...)
	if err := c.Compact(); err != nil {
		return ScalarOrArray{}, err
	}
	switch c.Kind() {
	case '{':
		return ScalarOrArray{}, &ShapeError{Kind: KindObject}
	case '[':
		var elems []jsontext.Value
		if err := json.Unmarshal(c, &elems); err != nil {
			return ScalarOrArray{}, err
		}
		return ScalarOrArray{elems: elems, isArray: true}, nil
	default:
		s, err := scalarFromCompact(c)
		if err != nil {
			return ScalarOrArray{}, err
		}
		return ScalarOrArray{scalar: s}, nil
	}
}

// Value converts the ScalarOrArray back to a full JSON value. The
// conversion is total and lossless; the result is also the JSON text of
// the value, identical to what the underlying serializer produces.
func (v ScalarOrArray) Value() jsontext.Value {
	if !v.isArray {
		return v.scalar.Value()
	}
	// Elements are already valid and compact, so the array text is their
	// comma-separated concatenation.
	out := jsontext.Value{'['}
	for i, e := range v.elems {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, e...)
	}
	return append(out, ']')
}

// Kind reports the top-level shape of the value.
func (v ScalarOrArray) Kind() Kind {
	if v.isArray {
		return KindArray
	}
	return v.scalar.kind
}

// IsNull reports whether the value is a JSON null.
func (v ScalarOrArray) IsNull() bool {
	return !v.isArray && v.scalar.kind == KindNull
}

// AsScalar returns the value as a Scalar, if it is not an array.
func (v ScalarOrArray) AsScalar() (Scalar, bool) {
	return v.scalar, !v.isArray
}

// AsBool returns the boolean payload, if the value is a boolean.
func (v ScalarOrArray) AsBool() (bool, bool) {
	if v.isArray {
		return false, false
	}
	return v.scalar.AsBool()
}

// AsInt returns the number as an int64, if the value is a number written
// as an integer that fits in int64.
func (v ScalarOrArray) AsInt() (int64, bool) {
	if v.isArray {
		return 0, false
	}
	return v.scalar.AsInt()
}

// AsUint returns the number as a uint64, if the value is a number written
// as a non-negative integer that fits in uint64.
func (v ScalarOrArray) AsUint() (uint64, bool) {
	if v.isArray {
		return 0, false
	}
	return v.scalar.AsUint()
}

// AsFloat returns the number as a float64, if the value is a number.
func (v ScalarOrArray) AsFloat() (float64, bool) {
	if v.isArray {
		return 0, false
	}
	return v.scalar.AsFloat()
}

// AsString returns the decoded string payload, if the value is a string.
func (v ScalarOrArray) AsString() (string, bool) {
	if v.isArray {
		return "", false
	}
	return v.scalar.AsString()
}

// Elements returns a copy of the array elements, or nil if the value is
// not an array. An empty array returns a non-nil empty slice.
func (v ScalarOrArray) Elements() []jsontext.Value {
	if !v.isArray {
		return nil
	}
	out := make([]jsontext.Value, len(v.elems))
	for i, e := range v.elems {
		out[i] = append(jsontext.Value(nil), e...)
	}
	return out
}

// Len returns the number of array elements, or 0 if the value is not an
// array.
func (v ScalarOrArray) Len() int {
	return len(v.elems)
}

// Equal reports structural equality: the kinds match and the payloads
// are equal. Array elements are compared by their compact JSON text.
func (v ScalarOrArray) Equal(o ScalarOrArray) bool {
	if v.isArray != o.isArray {
		return false
	}
	if !v.isArray {
		return v.scalar == o.scalar
	}
	if len(v.elems) != len(o.elems) {
		return false
	}
	for i := range v.elems {
		if !bytes.Equal(v.elems[i], o.elems[i]) {
			return false
		}
	}
	return true
}

// String returns the JSON text of the value.
func (v ScalarOrArray) String() string {
	return string(v.Value())
}

// MarshalJSONTo implements json.MarshalerTo.
func (v ScalarOrArray) MarshalJSONTo(enc *jsontext.Encoder) error {
	if !v.isArray {
		return enc.WriteValue(v.scalar.Value())
	}
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return err
	}
	for _, e := range v.elems {
		if err := enc.WriteValue(e); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndArray)
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom. It reads the next
// value from dec and fails with a *ShapeError if its top-level shape is
// an object.
func (v *ScalarOrArray) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	raw, err := dec.ReadValue()
	if err != nil {
		return err
	}
	parsed, err := ScalarOrArrayFromValue(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON implements encoding/json.Marshaler for v1 compatibility.
func (v ScalarOrArray) MarshalJSON() ([]byte, error) {
	return v.Value(), nil
}

// UnmarshalJSON implements encoding/json.Unmarshaler for v1 compatibility.
func (v *ScalarOrArray) UnmarshalJSON(b []byte) error {
	parsed, err := ScalarOrArrayFromValue(b)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
