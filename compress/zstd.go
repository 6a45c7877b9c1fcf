package compress

// ZstdCompressor is a Zstandard codec, the best ratio of the built-ins.
//
// The pure-Go klauspost implementation is used by default; building with the
// gozstd tag switches to the cgo binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
