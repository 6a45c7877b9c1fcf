// Package node defines the generic document tree produced by the tree reader.
//
// Node is a closed sum type: a small value whose Kind selects which of its
// payloads is meaningful. Every kind has exactly one constructor, and
// consumers switch on Kind instead of asserting dynamic types.
package node

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Kind identifies the variant held by a Node.
type Kind uint8

const (
	// KindMissing marks a value that was deliberately not materialized, such
	// as a vector field read in skip mode. It is also the zero Node.
	KindMissing Kind = iota
	KindObject
	KindArray
	KindString
	KindInt32
	KindInt64
	KindBigInt
	KindFloat64
	KindDecimal
	KindBool
	KindNull
	// KindFloats is an opaque, flat sequence of float32 values.
	KindFloats
)

var kindNames = [...]string{
	KindMissing: "missing",
	KindObject:  "object",
	KindArray:   "array",
	KindString:  "string",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindBigInt:  "bigint",
	KindFloat64: "float64",
	KindDecimal: "decimal",
	KindBool:    "bool",
	KindNull:    "null",
	KindFloats:  "floats",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Node is one value in a document tree.
//
// Scalars are stored inline; containers and large payloads by reference. A
// Node built by the reader is exclusively owned by its parent container.
type Node struct {
	kind Kind
	num  uint64 // int32/int64 bits, float64 bits, bool
	str  string
	ref  any // *ObjectNode, []Node, *big.Int, decimal.Decimal, []float32
}

// Object returns a new empty object node.
func Object() Node {
	return Node{kind: KindObject, ref: NewObject()}
}

// FromObject wraps an existing ObjectNode. A nil obj yields an empty object.
func FromObject(obj *ObjectNode) Node {
	if obj == nil {
		obj = NewObject()
	}

	return Node{kind: KindObject, ref: obj}
}

// Array returns an array node holding items in order.
func Array(items ...Node) Node {
	if items == nil {
		items = []Node{}
	}

	return Node{kind: KindArray, ref: items}
}

// String returns a string node.
func String(s string) Node {
	return Node{kind: KindString, str: s}
}

// Int32 returns a 32-bit integer node.
func Int32(v int32) Node {
	return Node{kind: KindInt32, num: uint64(int64(v))}
}

// Int64 returns a 64-bit integer node.
func Int64(v int64) Node {
	return Node{kind: KindInt64, num: uint64(v)}
}

// BigInt returns an arbitrary-precision integer node. The node takes
// ownership of v.
func BigInt(v *big.Int) Node {
	if v == nil {
		v = new(big.Int)
	}

	return Node{kind: KindBigInt, ref: v}
}

// Float64 returns a 64-bit float node.
func Float64(v float64) Node {
	return Node{kind: KindFloat64, num: math.Float64bits(v)}
}

// Decimal returns an arbitrary-precision decimal node.
func Decimal(d decimal.Decimal) Node {
	return Node{kind: KindDecimal, ref: d}
}

// Bool returns a boolean node.
func Bool(b bool) Node {
	if b {
		return Node{kind: KindBool, num: 1}
	}

	return Node{kind: KindBool}
}

// Null returns a null node.
func Null() Node {
	return Node{kind: KindNull}
}

// Floats returns an opaque float32 sequence node. The node takes ownership
// of v; a nil v is stored as an empty sequence.
func Floats(v []float32) Node {
	if v == nil {
		v = []float32{}
	}

	return Node{kind: KindFloats, ref: v}
}

// Missing returns the skipped-value marker.
func Missing() Node {
	return Node{}
}

// Kind returns the variant of n.
func (n Node) Kind() Kind { return n.kind }

// IsMissing reports whether n is the skipped-value marker.
func (n Node) IsMissing() bool { return n.kind == KindMissing }

// IsNull reports whether n is a null node.
func (n Node) IsNull() bool { return n.kind == KindNull }

// IsNumber reports whether n is an integer or float node of any width.
func (n Node) IsNumber() bool {
	switch n.kind {
	case KindInt32, KindInt64, KindBigInt, KindFloat64, KindDecimal:
		return true
	default:
		return false
	}
}

// IsIntegral reports whether n is an integer node of any width.
func (n Node) IsIntegral() bool {
	return n.kind == KindInt32 || n.kind == KindInt64 || n.kind == KindBigInt
}

// IsContainer reports whether n is an object or an array.
func (n Node) IsContainer() bool {
	return n.kind == KindObject || n.kind == KindArray
}

// AsString returns the value of a string node.
func (n Node) AsString() (string, bool) {
	if n.kind != KindString {
		return "", false
	}

	return n.str, true
}

// AsInt64 returns the value of an integer node that fits in int64.
func (n Node) AsInt64() (int64, bool) {
	switch n.kind {
	case KindInt32, KindInt64:
		return int64(n.num), true
	case KindBigInt:
		b, _ := n.ref.(*big.Int)
		if b.IsInt64() {
			return b.Int64(), true
		}
	}

	return 0, false
}

// AsBigInt returns the value of any integer node as a new big.Int.
func (n Node) AsBigInt() (*big.Int, bool) {
	switch n.kind {
	case KindInt32, KindInt64:
		return big.NewInt(int64(n.num)), true
	case KindBigInt:
		b, _ := n.ref.(*big.Int)
		return new(big.Int).Set(b), true
	default:
		return nil, false
	}
}

// AsFloat64 returns the value of any numeric node as float64, rounding when
// the node holds more precision than float64 carries.
func (n Node) AsFloat64() (float64, bool) {
	switch n.kind {
	case KindInt32, KindInt64:
		return float64(int64(n.num)), true
	case KindBigInt:
		b, _ := n.ref.(*big.Int)
		f, _ := new(big.Float).SetInt(b).Float64()

		return f, true
	case KindFloat64:
		return math.Float64frombits(n.num), true
	case KindDecimal:
		d, _ := n.ref.(decimal.Decimal)
		f, _ := d.Float64()

		return f, true
	default:
		return 0, false
	}
}

// AsDecimal returns the value of a decimal node.
func (n Node) AsDecimal() (decimal.Decimal, bool) {
	if n.kind != KindDecimal {
		return decimal.Decimal{}, false
	}
	d, _ := n.ref.(decimal.Decimal)

	return d, true
}

// Number returns the value of any numeric node as an exact decimal. Float64
// nodes convert through their shortest decimal representation; non-finite
// floats are not representable and report false.
func (n Node) Number() (decimal.Decimal, bool) {
	switch n.kind {
	case KindInt32, KindInt64:
		return decimal.NewFromInt(int64(n.num)), true
	case KindBigInt:
		b, _ := n.ref.(*big.Int)
		return decimal.NewFromBigInt(b, 0), true
	case KindFloat64:
		f := math.Float64frombits(n.num)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Decimal{}, false
		}

		return decimal.NewFromFloat(f), true
	case KindDecimal:
		d, _ := n.ref.(decimal.Decimal)
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}

// AsBool returns the value of a boolean node.
func (n Node) AsBool() (bool, bool) {
	if n.kind != KindBool {
		return false, false
	}

	return n.num == 1, true
}

// AsFloats returns the sequence held by a floats node. The slice is shared
// with the node.
func (n Node) AsFloats() ([]float32, bool) {
	if n.kind != KindFloats {
		return nil, false
	}
	v, _ := n.ref.([]float32)

	return v, true
}

// AsObject returns the fields of an object node.
func (n Node) AsObject() (*ObjectNode, bool) {
	if n.kind != KindObject {
		return nil, false
	}
	obj, _ := n.ref.(*ObjectNode)

	return obj, true
}

// AsArray returns the items of an array node. The slice is shared with the
// node.
func (n Node) AsArray() ([]Node, bool) {
	if n.kind != KindArray {
		return nil, false
	}
	items, _ := n.ref.([]Node)

	return items, true
}

// Len returns the number of fields, items or floats held by n, and 0 for
// scalars.
func (n Node) Len() int {
	switch n.kind {
	case KindObject:
		obj, _ := n.ref.(*ObjectNode)
		return obj.Len()
	case KindArray:
		items, _ := n.ref.([]Node)
		return len(items)
	case KindFloats:
		v, _ := n.ref.([]float32)
		return len(v)
	default:
		return 0
	}
}
