// Package chunk provides a growable float32 buffer for sequences whose final
// length is unknown until the last element arrives.
//
// A FloatBuilder hands out fixed-capacity chunks. The caller fills the live
// chunk through Append, which swaps in a larger chunk whenever the current one
// is full. Filled chunks are kept aside untouched, so growth never copies data
// already written; Finish concatenates everything into one exact-length slice.
//
// Typical usage:
//
//	var b chunk.FloatBuilder
//	buf, idx := b.Start(), 0
//	for _, v := range values {
//		buf, idx = b.Append(buf, idx, v)
//	}
//	out := b.Finish(buf, idx)
//
// Chunks come from a process-wide pool and return to it on Finish or Abort,
// so a builder reused across vectors reaches a steady state with no chunk
// allocation. The slice returned by Finish is freshly allocated and never
// aliases a chunk.
package chunk

import "github.com/arloliu/vectree/internal/pool"

const (
	// InitialChunkSize is the capacity of the first chunk handed out by Start.
	InitialChunkSize = pool.MinFloatChunk

	// MaxChunkSize caps chunk growth. Once reached, every further chunk has
	// exactly this capacity.
	MaxChunkSize = pool.MaxFloatChunk
)

// FloatBuilder accumulates float32 values in a list of chunks.
//
// The zero value is ready to use. A FloatBuilder is not safe for concurrent
// use; it is meant to be owned by a single reader.
type FloatBuilder struct {
	filled [][]float32 // completed chunks, each sliced to its filled length
	total  int         // elements held by filled
	next   int         // capacity of the next chunk
}

// Start discards any previous state and returns the first empty chunk.
// The returned chunk has length equal to its capacity; callers write into it
// by index starting at 0.
func (b *FloatBuilder) Start() []float32 {
	b.Reset()
	b.next = InitialChunkSize * 2

	return pool.GetFloatChunk(InitialChunkSize)
}

// Append stores v at chunk[idx] and returns the chunk and index to use for the
// next call. When idx has reached the end of chunk, the chunk is flushed and
// v goes to index 0 of a new, larger chunk.
func (b *FloatBuilder) Append(chunk []float32, idx int, v float32) ([]float32, int) {
	if idx >= len(chunk) {
		chunk = b.GrowAndFlush(chunk, idx)
		idx = 0
	}
	chunk[idx] = v

	return chunk, idx + 1
}

// GrowAndFlush moves the first idx elements of chunk into the filled list and
// returns a new empty chunk. Chunk capacity doubles on each call up to
// MaxChunkSize.
func (b *FloatBuilder) GrowAndFlush(chunk []float32, idx int) []float32 {
	if idx > 0 {
		b.filled = append(b.filled, chunk[:idx])
		b.total += idx
	} else {
		pool.PutFloatChunk(chunk)
	}

	size := b.next
	if size == 0 {
		size = InitialChunkSize
	}
	b.next = min(size*2, MaxChunkSize)

	return pool.GetFloatChunk(size)
}

// Finish returns a new slice holding every value appended since Start, in
// append order, followed by the first idx elements of chunk. The slice length
// equals its capacity. The builder is reset and chunk must not be used
// afterwards.
func (b *FloatBuilder) Finish(chunk []float32, idx int) []float32 {
	out := make([]float32, b.total+idx)

	n := 0
	for _, c := range b.filled {
		n += copy(out[n:], c)
	}
	copy(out[n:], chunk[:idx])

	pool.PutFloatChunk(chunk)
	b.Reset()

	return out
}

// Abort returns the live chunk and every flushed chunk to the pool without
// building a result. Use it when a sequence is abandoned part way; chunk must
// not be used afterwards.
func (b *FloatBuilder) Abort(chunk []float32) {
	pool.PutFloatChunk(chunk)
	b.Reset()
}

// Len returns the number of values held in flushed chunks. Values in the live
// chunk are tracked by the caller's index.
func (b *FloatBuilder) Len() int {
	return b.total
}

// Reset returns flushed chunks to the pool and clears the builder.
func (b *FloatBuilder) Reset() {
	for i, c := range b.filled {
		pool.PutFloatChunk(c)
		b.filled[i] = nil
	}
	b.filled = b.filled[:0]
	b.total = 0
	b.next = 0
}
