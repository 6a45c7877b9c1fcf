package node

import (
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Equal reports whether a and b are structurally identical: same kinds, same
// scalar values, same fields in the same order, same items. Float values are
// compared by bit pattern, so NaN equals an identical NaN and 0 differs
// from -0. Numbers of different kinds are never equal; compare Number()
// results to ignore representation.
func Equal(a, b Node) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindMissing, KindNull:
		return true
	case KindString:
		return a.str == b.str
	case KindInt32, KindInt64, KindFloat64, KindBool:
		return a.num == b.num
	case KindBigInt:
		x, _ := a.ref.(*big.Int)
		y, _ := b.ref.(*big.Int)

		return x.Cmp(y) == 0
	case KindDecimal:
		x, _ := a.ref.(decimal.Decimal)
		y, _ := b.ref.(decimal.Decimal)

		return x.Equal(y)
	case KindFloats:
		x, _ := a.ref.([]float32)
		y, _ := b.ref.([]float32)

		return slices.EqualFunc(x, y, func(p, q float32) bool {
			return math.Float32bits(p) == math.Float32bits(q)
		})
	case KindArray:
		x, _ := a.ref.([]Node)
		y, _ := b.ref.([]Node)

		return slices.EqualFunc(x, y, Equal)
	case KindObject:
		x, _ := a.ref.(*ObjectNode)
		y, _ := b.ref.(*ObjectNode)
		if x.Len() != y.Len() {
			return false
		}
		for i, k := range x.keys {
			if y.keys[i] != k || !Equal(x.vals[i], y.vals[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// String renders n in a compact JSON-like debug form. Floats nodes print as
// floats[...], skipped values as <missing>. It is not a serializer: no
// escaping guarantees beyond Go quoting are made.
func (n Node) String() string {
	var sb strings.Builder
	n.appendTo(&sb)

	return sb.String()
}

func (n Node) appendTo(sb *strings.Builder) {
	switch n.kind {
	case KindMissing:
		sb.WriteString("<missing>")
	case KindNull:
		sb.WriteString("null")
	case KindString:
		sb.WriteString(strconv.Quote(n.str))
	case KindInt32, KindInt64:
		sb.WriteString(strconv.FormatInt(int64(n.num), 10))
	case KindBigInt:
		b, _ := n.ref.(*big.Int)
		sb.WriteString(b.String())
	case KindFloat64:
		sb.WriteString(strconv.FormatFloat(math.Float64frombits(n.num), 'g', -1, 64))
	case KindDecimal:
		d, _ := n.ref.(decimal.Decimal)
		sb.WriteString(d.String())
	case KindBool:
		sb.WriteString(strconv.FormatBool(n.num == 1))
	case KindFloats:
		v, _ := n.ref.([]float32)
		sb.WriteString("floats[")
		for i, f := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
		}
		sb.WriteByte(']')
	case KindArray:
		items, _ := n.ref.([]Node)
		sb.WriteByte('[')
		for i, item := range items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.appendTo(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		obj, _ := n.ref.(*ObjectNode)
		sb.WriteByte('{')
		for i, k := range obj.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			obj.vals[i].appendTo(sb)
		}
		sb.WriteByte('}')
	}
}
