// Package endian provides the byte order engines used by the vector codec.
//
// The packed vector format is big-endian: the most significant byte of each
// IEEE-754 bit pattern comes first. Little-endian is available for
// interoperability with stores that keep float32 BLOBs in host order.
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, math.Float32bits(v))
//
// All engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so encoders
// can both write into preallocated slices and append to growing ones.
//
// binary.BigEndian and binary.LittleEndian satisfy this interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine, the vector wire order.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x01
}

// Name returns "big" or "little" for the given engine.
func Name(engine EndianEngine) string {
	if IsBigEndian(engine) {
		return "big"
	}

	return "little"
}
