package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseError_Is(t *testing.T) {
	err := NewParseError("unsupported token type", "BINARY", 3, nil)

	require.ErrorIs(t, err, ErrParse)
	require.NotErrorIs(t, err, ErrFormat)

	wrapped := fmt.Errorf("read document: %w", err)
	require.ErrorIs(t, wrapped, ErrParse)

	var pe *ParseError
	require.True(t, errors.As(wrapped, &pe))
	require.Equal(t, 3, pe.Offset)
}

func TestParseError_UnwrapCause(t *testing.T) {
	err := NewParseError("duplicate field", "FIELD_NAME", 7, ErrDuplicateField)

	require.ErrorIs(t, err, ErrDuplicateField)
	require.ErrorIs(t, err, ErrParse)
}

func TestParseError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "message only",
			err:  &ParseError{Msg: "no content", Offset: -1},
			want: "parse error: no content",
		},
		{
			name: "token without offset",
			err:  &ParseError{Msg: "should be end-object", Token: "END_ARRAY", Offset: -1},
			want: "parse error: should be end-object (token END_ARRAY)",
		},
		{
			name: "token, offset and field",
			err: &ParseError{
				Msg:       "invalid content in vector: expected number",
				Token:     "STRING",
				Offset:    12,
				FieldName: "$vector",
			},
			want: `parse error: invalid content in vector: expected number (token STRING at #12) in field "$vector"`,
		},
		{
			name: "with cause",
			err:  &ParseError{Msg: "read token", Offset: -1, Err: errors.New("unexpected EOF")},
			want: "parse error: read token: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestFormatf(t *testing.T) {
	err := Formatf("vector length (%d) not a multiple of 4 bytes", 5)

	require.ErrorIs(t, err, ErrFormat)
	require.Equal(t, "vector length (5) not a multiple of 4 bytes: format error", err.Error())
}
