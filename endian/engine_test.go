package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	bytes := make([]byte, 4)
	engine.PutUint32(bytes, math.Float32bits(1.0))
	require.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, bytes, "big endian should put MSB first")
	require.Equal(t, float32(1.0), math.Float32frombits(engine.Uint32(bytes)))
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	bytes := engine.AppendUint32(nil, math.Float32bits(1.0))
	require.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F}, bytes, "little endian should put LSB first")
}

func TestIsBigEndian(t *testing.T) {
	require.True(t, IsBigEndian(GetBigEndianEngine()))
	require.False(t, IsBigEndian(GetLittleEndianEngine()))
}

func TestName(t *testing.T) {
	require.Equal(t, "big", Name(GetBigEndianEngine()))
	require.Equal(t, "little", Name(GetLittleEndianEngine()))
}

func TestEnginesDiffer(t *testing.T) {
	var value uint32 = 0x01020304

	big := GetBigEndianEngine().AppendUint32(nil, value)
	little := GetLittleEndianEngine().AppendUint32(nil, value)

	require.NotEqual(t, big, little)
	require.Equal(t, value, GetBigEndianEngine().Uint32(big))
	require.Equal(t, value, GetLittleEndianEngine().Uint32(little))
}
