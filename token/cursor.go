// Package token defines the pull-based token cursor consumed by the tree
// reader, together with two implementations: JSONCursor over JSON text and
// SliceCursor over a pre-built token list.
package token

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Cursor is a forward-only pull interface over the lexical tokens of one
// document.
//
// Typed accessors are valid only while the cursor is positioned on a token of
// a matching kind; otherwise they return errs.ErrTokenMismatch. Integer
// accessors return errs.ErrNumberRange when the value does not fit.
type Cursor interface {
	// Next advances to the next token and returns its kind. It returns io.EOF
	// once the input is exhausted.
	Next() (Kind, error)

	// Kind returns the kind of the current token.
	Kind() Kind

	// NextFieldName advances to the next token. If it is a field name, the name
	// is returned with true; otherwise it returns "", false and the caller
	// inspects Kind.
	NextFieldName() (string, bool, error)

	// FieldName returns the name of the current field: the name itself on a
	// KindFieldName token, the owning member name on a value token directly
	// inside an object, and "" elsewhere.
	FieldName() string

	// Text returns the current token's source text: the string value, the
	// field name, the exact number literal, or the literal keyword.
	Text() (string, error)

	Int32() (int32, error)
	Int64() (int64, error)
	BigInt() (*big.Int, error)
	Float32() (float32, error)
	Float64() (float64, error)
	Decimal() (decimal.Decimal, error)

	// Binary returns the payload of a KindBinary token, or the Base64-decoded
	// content of a KindString token.
	Binary() ([]byte, error)

	// Offset returns the zero-based ordinal of the current token, or -1 before
	// the first token.
	Offset() int
}

// Token is one pre-lexed token replayed by a SliceCursor.
type Token struct {
	Kind  Kind
	Text  string
	Bytes []byte
}

// String returns a short description used in error messages.
func (t Token) String() string {
	switch t.Kind {
	case KindFieldName, KindString, KindInt, KindFloat:
		return t.Kind.String() + " " + t.Text
	default:
		return t.Kind.String()
	}
}

// StartObject returns a start-object token.
func StartObject() Token { return Token{Kind: KindStartObject} }

// EndObject returns an end-object token.
func EndObject() Token { return Token{Kind: KindEndObject} }

// StartArray returns a start-array token.
func StartArray() Token { return Token{Kind: KindStartArray} }

// EndArray returns an end-array token.
func EndArray() Token { return Token{Kind: KindEndArray} }

// Name returns a field-name token.
func Name(name string) Token { return Token{Kind: KindFieldName, Text: name} }

// String returns a string value token.
func String(s string) Token { return Token{Kind: KindString, Text: s} }

// Number returns a number token classified from its literal text.
func Number(text string) Token { return Token{Kind: NumberKind(text), Text: text} }

// Bool returns a true or false token.
func Bool(b bool) Token {
	if b {
		return Token{Kind: KindTrue, Text: "true"}
	}

	return Token{Kind: KindFalse, Text: "false"}
}

// Null returns a null token.
func Null() Token { return Token{Kind: KindNull, Text: "null"} }

// Binary returns an embedded-binary token carrying b.
func Binary(b []byte) Token { return Token{Kind: KindBinary, Bytes: b} }
