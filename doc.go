// Package jsonshape provides JSON value types that statically exclude
// certain top-level shapes.
//
// Two types are provided:
//
//   - Scalar holds a JSON null, boolean, number, or string. It can never
//     hold an object or an array.
//   - ScalarOrArray additionally allows a JSON array. Array elements are
//     ordinary jsontext.Value elements and are not restricted further, so
//     an array may contain objects even though a bare top-level object is
//     rejected.
//
// Both types convert losslessly to and from jsontext.Value, the generic
// raw value representation of github.com/go-json-experiment/json. All
// parsing, number formatting, string escaping and UTF-8 validation is
// delegated to that library; jsonshape only checks the top-level shape.
//
// Values are immutable. Converting a full value whose top-level shape is
// excluded fails with a *ShapeError; once a value has been constructed it
// can never represent a forbidden shape, so conversion back to the full
// model cannot fail.
package jsonshape
