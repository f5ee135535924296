package jsonshape

import (
	"testing"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{kind: KindNull, want: "Null"},
		{kind: KindBool, want: "Bool"},
		{kind: KindNumber, want: "Number"},
		{kind: KindString, want: "String"},
		{kind: KindArray, want: "Array"},
		{kind: KindObject, want: "Object"},
		{kind: Kind(99), want: "<unknown kind>"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var got Kind
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, k, got)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("Comment")))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{input: `null`, want: KindNull},
		{input: `true`, want: KindBool},
		{input: `false`, want: KindBool},
		{input: `42`, want: KindNumber},
		{input: `-1.5`, want: KindNumber},
		{input: `"x"`, want: KindString},
		{input: `[1]`, want: KindArray},
		{input: `{"a":1}`, want: KindObject},
		{input: ` 42`, want: KindNumber},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := KindOf(jsontext.Value(tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid input", func(t *testing.T) {
		_, ok := KindOf(jsontext.Value(``))
		assert.False(t, ok)
		_, ok = KindOf(jsontext.Value(`oops`))
		assert.False(t, ok)
	})
}
