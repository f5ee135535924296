package jsonshape

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

// Kind identifies the top-level shape of a JSON value.
//
// The zero value is KindNull, so the zero Scalar and the zero
// ScalarOrArray both represent a JSON null.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the name of the kind, e.g. "Object".
func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindNull:   "Null",
		KindBool:   "Bool",
		KindNumber: "Number",
		KindString: "String",
		KindArray:  "Array",
		KindObject: "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   KindNull,
		"Bool":   KindBool,
		"Number": KindNumber,
		"String": KindString,
		"Array":  KindArray,
		"Object": KindObject,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindNull,
		KindBool,
		KindNumber,
		KindString,
		KindArray,
		KindObject,
	}
}

// KindOf reports the top-level kind of a raw JSON value. The second
// return value is false if v does not begin with a valid JSON value.
func KindOf(v jsontext.Value) (Kind, bool) {
	return kindOf(v.Kind())
}

// kindOf maps a jsontext token kind byte to a Kind.
func kindOf(k jsontext.Kind) (Kind, bool) {
	switch k {
	case 'n':
		return KindNull, true
	case 't', 'f':
		return KindBool, true
	case '0':
		return KindNumber, true
	case '"':
		return KindString, true
	case '[':
		return KindArray, true
	case '{':
		return KindObject, true
	default:
		return KindNull, false
	}
}
