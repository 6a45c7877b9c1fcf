package vector

import (
	"iter"
	"math"

	"github.com/arloliu/vectree/endian"
	"github.com/arloliu/vectree/internal/pool"
)

// Encoder packs float32 values into a pooled buffer one at a time or in
// batches, for producers that do not hold the whole vector in memory.
//
// Call Finish when done to return the buffer to the pool.
type Encoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

// NewEncoder creates an Encoder writing in the byte order of engine.
//
// Parameters:
//   - engine: Byte order; use endian.GetBigEndianEngine() for the wire format
//
// Returns:
//   - *Encoder: A new encoder backed by a pooled buffer
func NewEncoder(engine endian.EndianEngine) *Encoder {
	return &Encoder{
		engine: engine,
		buf:    pool.GetVectorBuffer(),
	}
}

// Write appends one value.
//
// Panics if Finish has been called.
func (e *Encoder) Write(v float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.engine.PutUint32(e.buf.Extend(ElementSize), math.Float32bits(v))
}

// WriteSlice appends every value of values, growing the buffer once.
//
// Panics if Finish has been called.
func (e *Encoder) WriteSlice(values []float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}
	if len(values) == 0 {
		return
	}

	e.count += len(values)
	region := e.buf.Extend(len(values) * ElementSize)
	for i, v := range values {
		e.engine.PutUint32(region[i*ElementSize:], math.Float32bits(v))
	}
}

// Bytes returns the packed bytes written so far.
//
// The slice references the internal buffer: it is valid until the next
// write or Finish and must not be modified.
func (e *Encoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the number of packed bytes written.
func (e *Encoder) Size() int {
	return e.count * ElementSize
}

// Reset discards written values and keeps the buffer for reuse.
func (e *Encoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *Encoder) Finish() {
	if e.buf != nil {
		pool.PutVectorBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// Decoder reads values out of a packed payload without materializing the
// whole vector.
//
// Decoder is a small immutable value and safe for concurrent use.
type Decoder struct {
	engine endian.EndianEngine
}

// NewDecoder creates a Decoder for payloads in the byte order of engine.
func NewDecoder(engine endian.EndianEngine) Decoder {
	return Decoder{engine: engine}
}

// Count returns the number of whole elements in data. Trailing bytes that do
// not form an element are ignored.
func (d Decoder) Count(data []byte) int {
	return len(data) / ElementSize
}

// All iterates over every whole element of data in order.
func (d Decoder) All(data []byte) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		n := len(data) / ElementSize
		for i := range n {
			if !yield(math.Float32frombits(d.engine.Uint32(data[i*ElementSize:]))) {
				return
			}
		}
	}
}

// At returns the element at index, or false when index is out of range.
//
// Parameters:
//   - data: Packed payload
//   - index: Zero-based element index
//
// Returns:
//   - float32: The decoded element
//   - bool: false if index does not address a whole element
func (d Decoder) At(data []byte, index int) (float32, bool) {
	if index < 0 {
		return 0, false
	}
	start := index * ElementSize
	if start+ElementSize > len(data) {
		return 0, false
	}

	return math.Float32frombits(d.engine.Uint32(data[start:])), true
}

// Decode unpacks the whole payload, failing on a length that is not a
// multiple of 4.
func (d Decoder) Decode(data []byte) ([]float32, error) {
	return unpack(data, d.engine)
}
