// Package vector packs float32 vectors into a compact binary form and back.
//
// The packed form is the concatenation of each element's IEEE-754 bit pattern
// as four bytes, most significant byte first. Packing is a pure bit
// reinterpretation, so a round trip is bit-exact: negative zero, infinities
// and NaN payloads survive unchanged.
//
//	b := vector.Pack([]float32{1, -0.5})   // 3f 80 00 00 bf 00 00 00
//	v, err := vector.Unpack(b)
//
// On top of the byte form the package offers a Base64 text form for carrying
// a vector as a single JSON string scalar, the Float32s JSON type, a Codec
// adding optional compression, and ReadFrom for decoding a vector from a
// token cursor.
package vector

import (
	"math"

	"github.com/arloliu/vectree/endian"
	"github.com/arloliu/vectree/errs"
)

// ElementSize is the packed size of one float32 element in bytes.
const ElementSize = 4

var wireOrder = endian.GetBigEndianEngine()

// Pack returns the big-endian packed form of v. The result has length
// 4*len(v) and is never nil.
func Pack(v []float32) []byte {
	return AppendPacked(make([]byte, 0, len(v)*ElementSize), v)
}

// AppendPacked appends the big-endian packed form of v to dst and returns the
// extended slice.
func AppendPacked(dst []byte, v []float32) []byte {
	return appendPacked(dst, v, wireOrder)
}

func appendPacked(dst []byte, v []float32, engine endian.EndianEngine) []byte {
	for _, f := range v {
		dst = engine.AppendUint32(dst, math.Float32bits(f))
	}

	return dst
}

// Unpack decodes a big-endian packed vector.
//
// It fails with an error wrapping errs.ErrFormat when len(b) is not a
// multiple of 4; no partial result is returned in that case. An empty input
// yields an empty, non-nil slice.
func Unpack(b []byte) ([]float32, error) {
	return unpack(b, wireOrder)
}

func unpack(b []byte, engine endian.EndianEngine) ([]float32, error) {
	if err := CheckLength(len(b)); err != nil {
		return nil, err
	}

	out := make([]float32, len(b)/ElementSize)
	for i := range out {
		out[i] = math.Float32frombits(engine.Uint32(b[i*ElementSize:]))
	}

	return out, nil
}

// CheckLength validates a packed payload length.
func CheckLength(n int) error {
	if n%ElementSize != 0 {
		return errs.Formatf("vector length (%d) not a multiple of %d bytes", n, ElementSize)
	}

	return nil
}
