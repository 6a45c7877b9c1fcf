package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/arloliu/vectree/errs"
)

// NumberKind classifies a number literal: KindFloat when the text contains a
// fraction or exponent marker, KindInt otherwise.
func NumberKind(text string) Kind {
	if strings.ContainsAny(text, ".eE") {
		return KindFloat
	}

	return KindInt
}

func rangeError(text, typ string) error {
	return fmt.Errorf("%w: %s does not fit %s", errs.ErrNumberRange, text, typ)
}

func parseInt(text string, bitSize int, typ string) (int64, error) {
	v, err := strconv.ParseInt(text, 10, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, rangeError(text, typ)
		}

		return 0, fmt.Errorf("parse integer %q: %w", text, err)
	}

	return v, nil
}

func parseBigInt(text string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("parse integer %q: invalid syntax", text)
	}

	return v, nil
}

// parseFloat converts a number literal. Out-of-range literals saturate to
// infinity instead of failing, which matches how JSON decoders treat overflow.
func parseFloat(text string, bitSize int) (float64, error) {
	v, err := strconv.ParseFloat(text, bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("parse float %q: %w", text, err)
	}

	return v, nil
}

func parseDecimal(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse decimal %q: %w", text, err)
	}

	return d, nil
}

// position holds the current token of a cursor and implements every typed
// accessor of Cursor on top of it. Cursor implementations embed it and only
// supply Next and NextFieldName.
type position struct {
	kind   Kind
	text   string
	bin    []byte
	field  string
	offset int
}

func (p *position) mismatch(want string) error {
	return fmt.Errorf("%w: want %s, current token is %s", errs.ErrTokenMismatch, want, p.kind)
}

// Kind returns the kind of the current token.
func (p *position) Kind() Kind { return p.kind }

// FieldName returns the name of the current field.
func (p *position) FieldName() string { return p.field }

// Offset returns the ordinal of the current token.
func (p *position) Offset() int { return p.offset }

// Text returns the source text of the current token.
func (p *position) Text() (string, error) {
	switch p.kind {
	case KindNone:
		return "", p.mismatch("a token")
	case KindStartObject:
		return "{", nil
	case KindEndObject:
		return "}", nil
	case KindStartArray:
		return "[", nil
	case KindEndArray:
		return "]", nil
	case KindBinary:
		return base64.StdEncoding.EncodeToString(p.bin), nil
	default:
		return p.text, nil
	}
}

// Int32 returns the current integer token as int32.
func (p *position) Int32() (int32, error) {
	if p.kind != KindInt {
		return 0, p.mismatch("INT")
	}
	v, err := parseInt(p.text, 32, "int32")

	return int32(v), err
}

// Int64 returns the current integer token as int64.
func (p *position) Int64() (int64, error) {
	if p.kind != KindInt {
		return 0, p.mismatch("INT")
	}

	return parseInt(p.text, 64, "int64")
}

// BigInt returns the current integer token as an arbitrary-precision integer.
func (p *position) BigInt() (*big.Int, error) {
	if p.kind != KindInt {
		return nil, p.mismatch("INT")
	}

	return parseBigInt(p.text)
}

// Float32 returns the current number token rounded to float32.
func (p *position) Float32() (float32, error) {
	if !p.kind.IsNumeric() {
		return 0, p.mismatch("a number")
	}
	v, err := parseFloat(p.text, 32)

	return float32(v), err
}

// Float64 returns the current number token as float64.
func (p *position) Float64() (float64, error) {
	if !p.kind.IsNumeric() {
		return 0, p.mismatch("a number")
	}

	return parseFloat(p.text, 64)
}

// Decimal returns the current number token as an exact decimal.
func (p *position) Decimal() (decimal.Decimal, error) {
	if !p.kind.IsNumeric() {
		return decimal.Decimal{}, p.mismatch("a number")
	}

	return parseDecimal(p.text)
}

// Binary returns the raw bytes of a binary token or the decoded bytes of a
// Base64 string token.
func (p *position) Binary() ([]byte, error) {
	switch p.kind {
	case KindBinary:
		return p.bin, nil
	case KindString:
		b, err := base64.StdEncoding.DecodeString(p.text)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid base64 string: %w", errs.ErrFormat, err)
		}

		return b, nil
	default:
		return nil, p.mismatch("BINARY or STRING")
	}
}

// Describe renders the current token for error messages, e.g. `STRING "abc"`.
func Describe(c Cursor) string {
	k := c.Kind()
	switch k {
	case KindFieldName, KindString:
		s, _ := c.Text()
		return fmt.Sprintf("%s %q", k, s)
	case KindInt, KindFloat:
		s, _ := c.Text()
		return k.String() + " " + s
	default:
		return k.String()
	}
}
