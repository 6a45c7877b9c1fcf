package node

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNode_Kinds(t *testing.T) {
	big1, _ := new(big.Int).SetString("123456789012345678901234567890", 10)

	tests := []struct {
		name string
		n    Node
		kind Kind
	}{
		{"object", Object(), KindObject},
		{"array", Array(), KindArray},
		{"string", String("s"), KindString},
		{"int32", Int32(1), KindInt32},
		{"int64", Int64(1 << 40), KindInt64},
		{"bigint", BigInt(big1), KindBigInt},
		{"float64", Float64(1.5), KindFloat64},
		{"decimal", Decimal(decimal.RequireFromString("1.50")), KindDecimal},
		{"bool", Bool(true), KindBool},
		{"null", Null(), KindNull},
		{"floats", Floats([]float32{1}), KindFloats},
		{"missing", Missing(), KindMissing},
		{"zero value", Node{}, KindMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.n.Kind())
			require.Equal(t, tt.name == "object" || tt.name == "array", tt.n.IsContainer())
		})
	}
}

func TestNode_IntegerAccessors(t *testing.T) {
	v, ok := Int32(-7).AsInt64()
	require.True(t, ok)
	require.Equal(t, int64(-7), v)

	v, ok = Int64(math.MinInt64).AsInt64()
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), v)

	v, ok = BigInt(big.NewInt(42)).AsInt64()
	require.True(t, ok)
	require.Equal(t, int64(42), v)

	huge, _ := new(big.Int).SetString("99999999999999999999", 10)
	_, ok = BigInt(huge).AsInt64()
	require.False(t, ok)

	b, ok := Int32(-7).AsBigInt()
	require.True(t, ok)
	require.Equal(t, int64(-7), b.Int64())

	_, ok = Float64(1).AsInt64()
	require.False(t, ok)

	require.True(t, Int32(0).IsIntegral())
	require.True(t, BigInt(huge).IsNumber())
	require.False(t, Float64(0).IsIntegral())
	require.False(t, String("1").IsNumber())
}

func TestNode_FloatAccessors(t *testing.T) {
	f, ok := Float64(-0.5).AsFloat64()
	require.True(t, ok)
	require.Equal(t, -0.5, f)

	f, ok = Decimal(decimal.RequireFromString("12.25")).AsFloat64()
	require.True(t, ok)
	require.Equal(t, 12.25, f)

	f, ok = Int64(3).AsFloat64()
	require.True(t, ok)
	require.Equal(t, 3.0, f)

	_, ok = Bool(true).AsFloat64()
	require.False(t, ok)

	d, ok := Decimal(decimal.RequireFromString("1.0")).AsDecimal()
	require.True(t, ok)
	require.Equal(t, "1", d.String())
}

func TestNode_Number(t *testing.T) {
	want := decimal.RequireFromString("12.25")

	for _, n := range []Node{
		Float64(12.25),
		Decimal(decimal.RequireFromString("12.250")),
	} {
		got, ok := n.Number()
		require.True(t, ok)
		require.True(t, want.Equal(got), "%s", n)
	}

	got, ok := Int32(12).Number()
	require.True(t, ok)
	require.True(t, decimal.NewFromInt(12).Equal(got))

	_, ok = Float64(math.NaN()).Number()
	require.False(t, ok)
	_, ok = String("12.25").Number()
	require.False(t, ok)
}

func TestNode_Payloads(t *testing.T) {
	s, ok := String("hello").AsString()
	require.True(t, ok)
	require.Equal(t, "hello", s)

	b, ok := Bool(false).AsBool()
	require.True(t, ok)
	require.False(t, b)

	fl, ok := Floats(nil).AsFloats()
	require.True(t, ok)
	require.NotNil(t, fl)
	require.Empty(t, fl)

	items, ok := Array(Int32(1), Null()).AsArray()
	require.True(t, ok)
	require.Len(t, items, 2)

	_, ok = Null().AsObject()
	require.False(t, ok)
	require.True(t, Null().IsNull())
	require.True(t, Missing().IsMissing())
}

func TestNode_Len(t *testing.T) {
	obj := Object()
	o, _ := obj.AsObject()
	o.Set("a", Null())

	require.Equal(t, 1, obj.Len())
	require.Equal(t, 3, Array(Null(), Null(), Null()).Len())
	require.Equal(t, 2, Floats([]float32{1, 2}).Len())
	require.Equal(t, 0, String("abc").Len())
}

func TestEqual(t *testing.T) {
	nan := math.Float32frombits(0x7fc00001)
	negZero := float32(math.Copysign(0, -1))

	build := func() Node {
		obj := NewObject()
		obj.Set("a", Int32(1))
		obj.Set("v", Floats([]float32{1, nan, negZero}))
		obj.Set("list", Array(String("x"), Bool(true), Null()))

		return FromObject(obj)
	}

	require.True(t, Equal(build(), build()))
	require.True(t, Equal(Missing(), Missing()))

	require.False(t, Equal(Int32(1), Int64(1)), "representation matters")
	require.False(t, Equal(Floats([]float32{0}), Floats([]float32{negZero})))
	require.False(t, Equal(Array(Int32(1)), Array(Int32(1), Int32(2))))

	x := NewObject()
	x.Set("a", Null())
	x.Set("b", Null())
	y := NewObject()
	y.Set("b", Null())
	y.Set("a", Null())
	require.False(t, Equal(FromObject(x), FromObject(y)), "field order matters")
}

func TestNode_String(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Int32(1))
	obj.Set("$vector", Floats([]float32{1, -0.5}))
	obj.Set("s", Array(String("x"), Float64(2.5), Null(), Bool(false)))
	obj.Set("skip", Missing())

	require.Equal(t,
		`{"a":1,"$vector":floats[1,-0.5],"s":["x",2.5,null,false],"skip":<missing>}`,
		FromObject(obj).String())
}
