package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	require.Equal(t, "NONE", KindNone.String())
	require.Equal(t, "FIELD_NAME", KindFieldName.String())
	require.Equal(t, "BINARY", KindBinary.String())
	require.Equal(t, "UNKNOWN", Kind(200).String())
}

func TestKind_Predicates(t *testing.T) {
	require.True(t, KindInt.IsNumeric())
	require.True(t, KindFloat.IsNumeric())
	require.False(t, KindString.IsNumeric())

	require.True(t, KindNull.IsScalar())
	require.True(t, KindBinary.IsScalar())
	require.False(t, KindFieldName.IsScalar())
	require.False(t, KindStartArray.IsScalar())

	require.True(t, KindStartObject.IsStart())
	require.True(t, KindEndArray.IsEnd())
	require.False(t, KindEndArray.IsStart())
}

func TestNumberKind(t *testing.T) {
	tests := map[string]Kind{
		"0":      KindInt,
		"-17":    KindInt,
		"1.0":    KindFloat,
		"1e3":    KindFloat,
		"-2E-7":  KindFloat,
		"123456": KindInt,
	}
	for text, want := range tests {
		require.Equal(t, want, NumberKind(text), text)
	}
}
