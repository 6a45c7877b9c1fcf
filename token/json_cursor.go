package token

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"
)

// JSONCursor is a Cursor over JSON text.
//
// Lexing is delegated to go-json's streaming Decoder with UseNumber, so number
// tokens keep their exact source literal. The lexer consumes separators
// without checking them; the cursor checks container balance and member
// shape itself and tells object keys apart from string values by tracking the
// container stack.
type JSONCursor struct {
	position
	dec   *gojson.Decoder
	nest  nesting
	count int
}

var _ Cursor = (*JSONCursor)(nil)

// NewJSONCursor creates a cursor reading JSON text from r.
func NewJSONCursor(r io.Reader) *JSONCursor {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()

	return &JSONCursor{
		position: position{offset: -1},
		dec:      dec,
	}
}

// NewJSONCursorBytes creates a cursor over an in-memory JSON document.
func NewJSONCursorBytes(data []byte) *JSONCursor {
	return NewJSONCursor(bytes.NewReader(data))
}

// Next advances to the next token.
func (c *JSONCursor) Next() (Kind, error) {
	tok, err := c.dec.Token()
	if err != nil {
		c.position = position{offset: c.count}
		if errors.Is(err, io.EOF) {
			return KindNone, io.EOF
		}

		return KindNone, fmt.Errorf("read json token #%d: %w", c.count, err)
	}

	c.offset = c.count
	c.count++
	c.bin = nil
	c.text = ""

	switch v := tok.(type) {
	case gojson.Delim:
		switch v {
		case '{':
			c.kind = KindStartObject
		case '}':
			c.kind = KindEndObject
		case '[':
			c.kind = KindStartArray
		default:
			c.kind = KindEndArray
		}
	case string:
		c.text = v
		if c.nest.expectingName() {
			c.kind = KindFieldName
		} else {
			c.kind = KindString
		}
	case gojson.Number:
		// the literal aliases the decoder's read buffer
		c.text = strings.Clone(string(v))
		c.kind = NumberKind(c.text)
	case bool:
		if v {
			c.kind, c.text = KindTrue, "true"
		} else {
			c.kind, c.text = KindFalse, "false"
		}
	case nil:
		c.kind, c.text = KindNull, "null"
	default:
		return KindNone, fmt.Errorf("read json token #%d: unexpected token %T", c.offset, tok)
	}

	if err := c.checkShape(c.kind); err != nil {
		return KindNone, err
	}

	c.field = c.nest.enter(c.kind, c.text)

	return c.kind, nil
}

// NextFieldName advances and returns the field name if the new token is one.
func (c *JSONCursor) NextFieldName() (string, bool, error) {
	kind, err := c.Next()
	if err != nil {
		return "", false, err
	}
	if kind != KindFieldName {
		return "", false, nil
	}

	return c.text, true, nil
}

// checkShape rejects tokens that cannot appear at the current position:
// unbalanced or mismatched end delimiters, non-string object keys and an
// object closed right after a member name.
func (c *JSONCursor) checkShape(kind Kind) error {
	f := c.nest.top()
	switch {
	case kind == KindEndObject:
		if f == nil || !f.object {
			return c.syntaxError("unexpected '}'")
		}
		if !f.expectName {
			return c.syntaxError(fmt.Sprintf("missing value for field %q", f.name))
		}
	case kind == KindEndArray:
		if f == nil || f.object {
			return c.syntaxError("unexpected ']'")
		}
	case f != nil && f.object && f.expectName && kind != KindFieldName:
		return c.syntaxError("object key must be a string, got " + kind.String())
	}

	return nil
}

func (c *JSONCursor) syntaxError(msg string) error {
	c.position = position{offset: c.offset}

	return fmt.Errorf("read json token #%d: %s", c.offset, msg)
}
