package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/vectree/errs"
)

// S2Compressor is a fast block codec, a good fit for quantized vectors sent
// over the network.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bound := s2.MaxEncodedLen(len(data))
	if bound < 0 {
		return nil, fmt.Errorf("s2 compress: %w", s2.ErrTooLarge)
	}

	return s2.Encode(make([]byte, bound), data), nil
}

// Decompress decodes a single S2 block. The decoded size recorded in the
// block header is checked against MaxDecodedSize before any allocation.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompress: %w", err)
	}
	if size > MaxDecodedSize {
		return nil, errs.Formatf("s2: decoded size %d exceeds %d", size, MaxDecodedSize)
	}

	out, err := s2.Decode(make([]byte, size), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompress: %w", err)
	}

	return out, nil
}
