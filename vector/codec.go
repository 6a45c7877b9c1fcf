package vector

import (
	"fmt"

	"github.com/arloliu/vectree/compress"
	"github.com/arloliu/vectree/endian"
	"github.com/arloliu/vectree/errs"
	"github.com/arloliu/vectree/format"
	"github.com/arloliu/vectree/internal/options"
)

// Codec packs vectors and passes the packed bytes through an optional
// compression stage.
//
// The zero configuration (NewCodec with no options) is the plain big-endian
// packed form, identical to Pack and Unpack. A Codec is immutable after
// construction and safe for concurrent use.
type Codec struct {
	engine      endian.EndianEngine
	compression format.CompressionType
	compressor  compress.Codec
}

// CodecOption configures a Codec.
type CodecOption = options.Option[*Codec]

// WithByteOrder selects the element byte order. Big-endian is the default and
// the only order other implementations of the packed format understand.
func WithByteOrder(engine endian.EndianEngine) CodecOption {
	return options.New(func(c *Codec) error {
		if engine == nil {
			return fmt.Errorf("%w: nil byte order", errs.ErrInvalidOption)
		}
		c.engine = engine

		return nil
	})
}

// WithCompression selects the compression applied after packing.
func WithCompression(compression format.CompressionType) CodecOption {
	return options.New(func(c *Codec) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}
		c.compression = compression
		c.compressor = codec

		return nil
	})
}

// NewCodec creates a Codec.
//
// Parameters:
//   - opts: WithByteOrder, WithCompression
//
// Returns:
//   - *Codec: The configured codec
//   - error: An option was rejected
func NewCodec(opts ...CodecOption) (*Codec, error) {
	c := &Codec{
		engine:      endian.GetBigEndianEngine(),
		compression: format.CompressionNone,
		compressor:  compress.NewNoOpCompressor(),
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Compression returns the configured compression type.
func (c *Codec) Compression() format.CompressionType {
	return c.compression
}

// Marshal packs v and compresses the result. The returned slice is owned by
// the caller.
func (c *Codec) Marshal(v []float32) ([]byte, error) {
	enc := NewEncoder(c.engine)
	defer enc.Finish()

	enc.WriteSlice(v)

	out, err := c.compressor.Compress(enc.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress vector (%s): %w", c.compression, err)
	}
	if c.compression == format.CompressionNone {
		// The pass-through result aliases the pooled buffer.
		out = append(make([]byte, 0, len(out)), out...)
	}

	return out, nil
}

// Unmarshal reverses Marshal.
func (c *Codec) Unmarshal(data []byte) ([]float32, error) {
	packed, err := c.compressor.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress vector (%s): %w", c.compression, err)
	}

	return unpack(packed, c.engine)
}
