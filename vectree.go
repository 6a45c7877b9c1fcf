// Package vectree materializes JSON documents into generic trees while
// decoding embedding vectors straight into flat float32 buffers.
//
// Documents that carry embeddings usually hold one large numeric array next
// to a handful of ordinary fields. Building that array as a tree of boxed
// number nodes costs an allocation per element; vectree recognizes the
// reserved "$vector" field and reads its array into a []float32 instead.
//
// # Core Features
//
//   - Recursive-descent tree builder over a pull token cursor
//   - Exact value typing: int32 / int64 / big.Int promotion, float64 or decimal floats
//   - Selectable vector modes: native floats, number list, string list, skip
//   - Lossless big-endian float32 packing with Base64 text form
//   - Optional compression of packed vectors (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Reading a document:
//
//	tree, err := vectree.ReadTreeBytes([]byte(`{"id":"a","$vector":[0.25,-1.5]}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	obj, _ := tree.AsObject()
//	vec, _ := obj.Get("$vector")
//	floats, _ := vec.AsFloats() // []float32{0.25, -1.5}
//
// Packing a vector for transport:
//
//	s := vectree.EncodeVector(floats)  // "PoAAAL/AAAA="
//	back, err := vectree.DecodeVector(s)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained
// control use the reader, token, node and vector packages directly.
package vectree

import (
	"io"

	"github.com/arloliu/vectree/node"
	"github.com/arloliu/vectree/reader"
	"github.com/arloliu/vectree/token"
	"github.com/arloliu/vectree/vector"
)

// ReadTree reads one JSON value from r.
//
// Without options the reader uses its defaults: "$vector" arrays become
// float32 sequences, floats become float64 nodes, and a repeated field name
// keeps its last value.
//
// Parameters:
//   - r: Source of JSON text
//   - opts: reader options such as reader.WithVectorMode
//
// Returns:
//   - node.Node: The document tree
//   - error: An invalid option, a tokenizer error, or an *errs.ParseError
//
// Example:
//
//	tree, err := vectree.ReadTree(file,
//	    reader.WithVectorMode(format.VectorListOfStrings),
//	    reader.WithFloatsAsDecimal(true),
//	)
func ReadTree(r io.Reader, opts ...reader.Option) (node.Node, error) {
	tr, err := reader.New(opts...)
	if err != nil {
		return node.Node{}, err
	}

	return tr.ReadTree(token.NewJSONCursor(r))
}

// ReadTreeBytes reads one JSON value from data. See ReadTree.
func ReadTreeBytes(data []byte, opts ...reader.Option) (node.Node, error) {
	tr, err := reader.New(opts...)
	if err != nil {
		return node.Node{}, err
	}

	return tr.ReadTree(token.NewJSONCursorBytes(data))
}

// PackVector returns the big-endian packed form of v, four bytes per element.
func PackVector(v []float32) []byte {
	return vector.Pack(v)
}

// UnpackVector decodes a packed vector. It fails with an error wrapping
// errs.ErrFormat when len(b) is not a multiple of 4.
func UnpackVector(b []byte) ([]float32, error) {
	return vector.Unpack(b)
}

// EncodeVector returns the Base64 text form of the packed vector.
func EncodeVector(v []float32) string {
	return vector.EncodeToString(v)
}

// DecodeVector reverses EncodeVector.
func DecodeVector(s string) ([]float32, error) {
	return vector.DecodeString(s)
}
