package vector

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/vectree/chunk"
	"github.com/arloliu/vectree/errs"
	"github.com/arloliu/vectree/internal/hash"
	"github.com/arloliu/vectree/token"
)

// ReadFrom decodes a vector from the value token cur is positioned on.
//
// Accepted shapes:
//   - a string token holding the Base64 packed form
//   - a binary token holding the raw packed bytes
//   - an array of number tokens
//   - null, which yields a nil vector
//
// On success an array is consumed through its end-array token. Any other
// token kind, or a non-number inside the array, fails with a *errs.ParseError.
func ReadFrom(cur token.Cursor) ([]float32, error) {
	switch cur.Kind() {
	case token.KindString, token.KindBinary:
		packed, err := cur.Binary()
		if err != nil {
			return nil, err
		}

		return Unpack(packed)
	case token.KindStartArray:
		return readArray(cur)
	case token.KindNull:
		return nil, nil
	default:
		return nil, errs.NewParseError("unsupported token type for vector", token.Describe(cur), cur.Offset(), nil)
	}
}

func readArray(cur token.Cursor) ([]float32, error) {
	var b chunk.FloatBuilder
	buf, idx := b.Start(), 0

	for {
		kind, err := cur.Next()
		if err != nil {
			b.Abort(buf)
			if errors.Is(err, io.EOF) {
				return nil, errs.NewParseError("unexpected end of input in vector", "", -1, io.ErrUnexpectedEOF)
			}

			return nil, err
		}

		switch {
		case kind == token.KindEndArray:
			return b.Finish(buf, idx), nil
		case kind.IsNumeric():
			f, err := cur.Float32()
			if err != nil {
				pos := b.Len() + idx
				b.Abort(buf)

				return nil, fmt.Errorf("read vector element %d: %w", pos, err)
			}
			buf, idx = b.Append(buf, idx, f)
		default:
			b.Abort(buf)
			return nil, errs.NewParseError("invalid content in vector: expected number", token.Describe(cur), cur.Offset(), nil)
		}
	}
}

// Fingerprint returns the xxHash64 of the big-endian packed form of v. Equal
// fingerprints identify bit-identical vectors with high probability.
func Fingerprint(v []float32) uint64 {
	enc := NewEncoder(wireOrder)
	defer enc.Finish()

	enc.WriteSlice(v)

	return hash.Bytes(enc.Bytes())
}
