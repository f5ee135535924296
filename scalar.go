package jsonshape

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Scalar is a JSON value that is never an object or an array: a null,
// boolean, number, or string.
//
// The zero value is a JSON null. Scalar is comparable: == is structural
// equality over the kind and its payload. Numbers keep the raw literal
// text of their source, so two numbers are equal only if they were
// written the same way ("1e2" and "100" differ); strings are compared by
// their decoded text regardless of how they were escaped. Scalar may be
// used as a map key.
type Scalar struct {
	kind Kind
	b    bool
	// text holds the raw JSON literal for KindNumber and the decoded
	// payload for KindString.
	text string
}

// Null returns the JSON null value.
func Null() Scalar {
	return Scalar{}
}

// Bool returns a JSON boolean.
func Bool(v bool) Scalar {
	return Scalar{kind: KindBool, b: v}
}

// Int returns a JSON number holding an integer.
func Int(v int64) Scalar {
	return Scalar{kind: KindNumber, text: strconv.FormatInt(v, 10)}
}

// Uint returns a JSON number holding an unsigned integer.
func Uint(v uint64) Scalar {
	return Scalar{kind: KindNumber, text: strconv.FormatUint(v, 10)}
}

// Float returns a JSON number holding a floating-point value, formatted
// by the underlying JSON library. NaN and infinities have no JSON number
// representation and map to null.
func Float(v float64) Scalar {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null()
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return Null()
	}
	return Scalar{kind: KindNumber, text: string(raw)}
}

// String returns a JSON string. Invalid UTF-8 is replaced with the
// Unicode replacement character up front, so the payload always holds
// what the serializer would emit.
func String(v string) Scalar {
	if !utf8.ValidString(v) {
		v = strings.ToValidUTF8(v, "�")
	}
	return Scalar{kind: KindString, text: v}
}

// ScalarFromValue converts a full JSON value into a Scalar. It fails with
// a *ShapeError if the top-level shape of v is an object or an array, and
// passes through the underlying library's error if v is not valid JSON.
//
// The input is copied; v is retained in compact form, with its number and
// string token text unchanged.
func ScalarFromValue(v jsontext.Value) (Scalar, error) {
	c := append(jsontext.Value(nil), v...)
	if err := c.Compact(); err != nil {
		return Scalar{}, err
	}
	return scalarFromCompact(c)
}

// scalarFromCompact builds a Scalar from a validated, compacted value.
func scalarFromCompact(c jsontext.Value) (Scalar, error) {
	switch c.Kind() {
	case 'n':
		return Scalar{}, nil
	case 't':
		return Scalar{kind: KindBool, b: true}, nil
	case 'f':
		return Scalar{kind: KindBool}, nil
	case '0':
		return Scalar{kind: KindNumber, text: string(c)}, nil
	case '"':
		text, err := jsontext.AppendUnquote(nil, c)
		if err != nil {
			return Scalar{}, err
		}
		return Scalar{kind: KindString, text: string(text)}, nil
	case '{':
		return Scalar{}, &ShapeError{Kind: KindObject}
	case '[':
		return Scalar{}, &ShapeError{Kind: KindArray}
	default:
		panic("jsonshape: unexpected kind in valid JSON value")
	}
}

// Value converts the Scalar back to a full JSON value. The conversion is
// total: every Scalar maps to exactly one full value, and the raw text
// of numbers is reproduced exactly. The result is also the JSON text of
// the value, identical to what the underlying serializer produces.
func (s Scalar) Value() jsontext.Value {
	switch s.kind {
	case KindBool:
		if s.b {
			return jsontext.Value("true")
		}
		return jsontext.Value("false")
	case KindNumber:
		return jsontext.Value(s.text)
	case KindString:
		// Payloads are valid UTF-8 by construction (String normalizes,
		// AppendUnquote validates), so quoting cannot fail.
		q, _ := jsontext.AppendQuote(nil, s.text)
		return q
	default:
		return jsontext.Value("null")
	}
}

// Kind reports the top-level shape of the value.
func (s Scalar) Kind() Kind {
	return s.kind
}

// IsNull reports whether the value is a JSON null.
func (s Scalar) IsNull() bool {
	return s.kind == KindNull
}

// AsBool returns the boolean payload, if the value is a boolean.
func (s Scalar) AsBool() (bool, bool) {
	return s.b, s.kind == KindBool
}

// AsInt returns the number as an int64, if the value is a number written
// as an integer that fits in int64.
func (s Scalar) AsInt() (int64, bool) {
	if s.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseInt(s.text, 10, 64)
	return n, err == nil
}

// AsUint returns the number as a uint64, if the value is a number written
// as a non-negative integer that fits in uint64.
func (s Scalar) AsUint() (uint64, bool) {
	if s.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseUint(s.text, 10, 64)
	return n, err == nil
}

// AsFloat returns the number as a float64, if the value is a number.
func (s Scalar) AsFloat() (float64, bool) {
	if s.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseFloat(s.text, 64)
	return n, err == nil
}

// AsString returns the decoded string payload, if the value is a string.
func (s Scalar) AsString() (string, bool) {
	return s.text, s.kind == KindString
}

// Equal reports structural equality. It is equivalent to ==.
func (s Scalar) Equal(o Scalar) bool {
	return s == o
}

// String returns the JSON text of the value.
func (s Scalar) String() string {
	return string(s.Value())
}

// MarshalJSONTo implements json.MarshalerTo.
func (s Scalar) MarshalJSONTo(enc *jsontext.Encoder) error {
	return enc.WriteValue(s.Value())
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom. It reads the next
// value from dec and fails with a *ShapeError if its top-level shape is
// an object or an array.
func (s *Scalar) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	v, err := dec.ReadValue()
	if err != nil {
		return err
	}
	parsed, err := ScalarFromValue(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON implements encoding/json.Marshaler for v1 compatibility.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return s.Value(), nil
}

// UnmarshalJSON implements encoding/json.Unmarshaler for v1 compatibility.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	parsed, err := ScalarFromValue(b)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
