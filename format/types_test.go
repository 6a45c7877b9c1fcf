package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vectree/errs"
)

func TestVectorMode_String(t *testing.T) {
	tests := []struct {
		mode VectorMode
		want string
	}{
		{VectorGeneric, "Generic"},
		{VectorNativeFloats, "NativeFloats"},
		{VectorListOfNumbers, "ListOfNumbers"},
		{VectorListOfStrings, "ListOfStrings"},
		{VectorSkip, "Skip"},
		{VectorMode(0x7F), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestVectorMode_Valid(t *testing.T) {
	require.True(t, VectorGeneric.Valid())
	require.True(t, VectorSkip.Valid())
	require.False(t, VectorMode(0x10).Valid())
}

func TestParseVectorMode(t *testing.T) {
	for _, mode := range []VectorMode{VectorGeneric, VectorNativeFloats, VectorListOfNumbers, VectorListOfStrings, VectorSkip} {
		parsed, err := ParseVectorMode(mode.String())
		require.NoError(t, err)
		require.Equal(t, mode, parsed)
	}

	parsed, err := ParseVectorMode("LIST_OF_STRINGS")
	require.NoError(t, err)
	require.Equal(t, VectorListOfStrings, parsed)

	parsed, err = ParseVectorMode("array_of_floats")
	require.NoError(t, err)
	require.Equal(t, VectorNativeFloats, parsed)

	_, err = ParseVectorMode("columnar")
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}
