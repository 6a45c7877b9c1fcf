package pool

import (
	"math/bits"
	"sync"
)

// Float chunk size classes are powers of two from 16 to 256Ki elements.
const (
	MinFloatChunk = 1 << minChunkShift
	MaxFloatChunk = 1 << maxChunkShift

	minChunkShift = 4
	maxChunkShift = 18
)

var floatChunkPools [maxChunkShift - minChunkShift + 1]sync.Pool

// chunkHeaders recycles the *[]float32 boxes that carry chunks through
// floatChunkPools, so a Get/Put cycle does not allocate.
var chunkHeaders = sync.Pool{
	New: func() any { return new([]float32) },
}

// chunkClass maps a requested length to the index of the smallest size class
// holding it, or -1 when the request is larger than MaxFloatChunk.
func chunkClass(size int) int {
	if size <= MinFloatChunk {
		return 0
	}
	if size > MaxFloatChunk {
		return -1
	}

	return bits.Len(uint(size-1)) - minChunkShift
}

// GetFloatChunk returns a float32 slice of length size whose capacity is the
// size class holding it. Contents are not zeroed.
func GetFloatChunk(size int) []float32 {
	class := chunkClass(size)
	if class < 0 {
		return make([]float32, size)
	}

	if ptr, ok := floatChunkPools[class].Get().(*[]float32); ok {
		chunk := (*ptr)[:size]
		*ptr = nil
		chunkHeaders.Put(ptr)

		return chunk
	}

	return make([]float32, size, 1<<(class+minChunkShift))
}

// PutFloatChunk returns a chunk obtained from GetFloatChunk. Slices whose
// capacity is not exactly a size class are dropped.
func PutFloatChunk(chunk []float32) {
	c := cap(chunk)
	if c < MinFloatChunk || c > MaxFloatChunk || c&(c-1) != 0 {
		return
	}

	ptr, _ := chunkHeaders.Get().(*[]float32)
	*ptr = chunk[:0]
	floatChunkPools[bits.Len(uint(c))-1-minChunkShift].Put(ptr)
}
