// Package errs defines the sentinel errors shared by vectree packages.
//
// Callers should match errors with errors.Is and errors.As; every error
// returned by vectree wraps one of the sentinels below.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse is the structural error kind: the token stream is in a state the
	// tree reader did not expect (missing end-object, unsupported token, a
	// non-numeric element inside a vector array).
	ErrParse = errors.New("parse error")

	// ErrFormat is the codec error kind: a packed vector payload is malformed.
	ErrFormat = errors.New("format error")

	// ErrTokenMismatch is returned by cursor accessors when the current token
	// is not of the requested kind.
	ErrTokenMismatch = errors.New("token kind mismatch")

	// ErrNumberRange is returned when a number token does not fit the requested type.
	ErrNumberRange = errors.New("number out of range")

	// ErrDuplicateField is returned when an object repeats a field name under a
	// strict duplicate policy.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrMaxDepth is returned when container nesting exceeds the configured limit.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")

	// ErrInvalidOption is returned when a configuration option is rejected.
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnsupportedCompression is returned for unknown compression types.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// ParseError describes a structural failure of the tree reader.
//
// Token is a human-readable description of the offending token and Offset its
// ordinal position in the stream (-1 when unknown).
type ParseError struct {
	Msg       string
	Token     string
	FieldName string
	Offset    int
	Err       error
}

// NewParseError creates a ParseError with an optional cause.
func NewParseError(msg, tok string, offset int, cause error) *ParseError {
	return &ParseError{Msg: msg, Token: tok, Offset: offset, Err: cause}
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("parse error: ")
	sb.WriteString(e.Msg)
	if e.Token != "" {
		sb.WriteString(" (token ")
		sb.WriteString(e.Token)
		if e.Offset >= 0 {
			fmt.Fprintf(&sb, " at #%d", e.Offset)
		}
		sb.WriteByte(')')
	}
	if e.FieldName != "" {
		fmt.Fprintf(&sb, " in field %q", e.FieldName)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

// Is reports ErrParse for every ParseError so callers can test the kind
// without errors.As.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Formatf returns an error of the ErrFormat kind with a formatted message.
func Formatf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrFormat)
}
