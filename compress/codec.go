// Package compress provides the optional compression stage applied to packed
// vector payloads before they leave the process.
//
// Packed float32 vectors are high-entropy in their mantissa bits, so the
// benefit depends on the data: quantized or sparse embeddings compress well,
// dense model output usually does not. CompressionNone is the default.
package compress

import (
	"fmt"

	"github.com/arloliu/vectree/errs"
	"github.com/arloliu/vectree/format"
)

// MaxDecodedSize bounds the payload the block codecs will decode: 128MiB, or
// 32Mi float32 elements.
const MaxDecodedSize = 128 << 20

// Compressor compresses a complete packed payload.
//
// The returned slice is owned by the caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
//
// An error is returned when the input is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Implementations must be safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}
