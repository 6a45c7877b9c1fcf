package token

import "io"

// SliceCursor replays a fixed list of tokens.
//
// It backs adapters for binary document formats, whose decoders yield typed
// tokens directly, and lets callers build token shapes JSON text cannot
// express, such as embedded binary payloads.
type SliceCursor struct {
	position
	toks []Token
	next int
	nest nesting
}

var _ Cursor = (*SliceCursor)(nil)

// NewSliceCursor creates a cursor positioned before the first of toks.
func NewSliceCursor(toks ...Token) *SliceCursor {
	return &SliceCursor{
		position: position{offset: -1},
		toks:     toks,
	}
}

// Next advances to the next token.
func (c *SliceCursor) Next() (Kind, error) {
	if c.next >= len(c.toks) {
		c.position = position{offset: len(c.toks)}
		return KindNone, io.EOF
	}

	t := c.toks[c.next]
	c.offset = c.next
	c.next++

	c.kind = t.Kind
	c.text = t.Text
	c.bin = t.Bytes
	c.field = c.nest.enter(t.Kind, t.Text)

	return c.kind, nil
}

// NextFieldName advances and returns the field name if the new token is one.
func (c *SliceCursor) NextFieldName() (string, bool, error) {
	kind, err := c.Next()
	if err != nil {
		return "", false, err
	}
	if kind != KindFieldName {
		return "", false, nil
	}

	return c.text, true, nil
}

// Remaining returns the number of tokens not yet consumed.
func (c *SliceCursor) Remaining() int {
	return len(c.toks) - c.next
}

// Rewind moves the cursor back before the first token.
func (c *SliceCursor) Rewind() {
	c.position = position{offset: -1}
	c.next = 0
	c.nest.reset()
}
