// Package reader builds generic document trees from a token cursor.
//
// A TreeReader walks the cursor in a single recursive-descent pass and
// produces node.Node values: objects keep field order, integers take the
// narrowest of int32, int64 and big.Int that holds them losslessly, and
// floats become float64 or decimal nodes depending on one flag fixed for the
// whole read.
//
// One field name is reserved (DefaultVectorField, "$vector"). When an
// object member with that name holds an array, the reader hands the array to
// a vector reader selected by format.VectorMode instead of building a generic
// array of boxed numbers:
//
//	r, _ := reader.New(reader.WithVectorMode(format.VectorNativeFloats))
//	tree, err := r.ReadTree(token.NewJSONCursorBytes(doc))
//
// A TreeReader may be reused for any number of documents but is not safe for
// concurrent use.
package reader

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/arloliu/vectree/chunk"
	"github.com/arloliu/vectree/errs"
	"github.com/arloliu/vectree/format"
	"github.com/arloliu/vectree/internal/options"
	"github.com/arloliu/vectree/internal/symtab"
	"github.com/arloliu/vectree/node"
	"github.com/arloliu/vectree/token"
)

// Parse error messages.
const (
	msgNoContent        = "no content"
	msgUnexpectedEOF    = "unexpected end of input"
	msgShouldBeEndObj   = "should be end-object"
	msgUnsupportedToken = "unsupported token type"
	msgVectorNotNumber  = "invalid content in vector: expected number"
	msgDuplicateField   = "duplicate field"
	msgMaxDepth         = "nesting too deep"
)

// Stats describes what the most recent ReadTree call did.
type Stats struct {
	// Nodes is the number of tree nodes created. A float sequence counts as
	// a single node.
	Nodes int
	// Vectors is the number of vector arrays materialized by a non-skip mode.
	Vectors int
	// VectorElements is the total element count of materialized vectors.
	VectorElements int
	// VectorsSkipped is the number of vector arrays consumed in skip mode.
	VectorsSkipped int
}

// TreeReader turns a token stream into a node tree.
type TreeReader struct {
	cfg    Config
	floats chunk.FloatBuilder
	names  *symtab.Table
	stats  Stats
	depth  int
}

// New creates a TreeReader.
//
// Defaults: native float vectors under "$vector", float64 floats, last write
// wins on duplicate fields, field-name interning on, nesting limit 1000, no
// logging.
func New(opts ...Option) (*TreeReader, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	r := &TreeReader{cfg: cfg}
	if cfg.internNames {
		r.names = symtab.New(0)
	}

	return r, nil
}

// Config returns the reader configuration.
func (r *TreeReader) Config() Config {
	return r.cfg
}

// Stats returns the counters of the most recent ReadTree call.
func (r *TreeReader) Stats() Stats {
	return r.stats
}

// ReadTree reads one complete value from cur and returns it as a tree.
//
// The cursor may be positioned before the first token or on it. On success
// the cursor is left on the last token of the value. A document consisting of
// a lone end-object token yields an empty object; an input with no tokens
// fails.
//
// Structural failures are reported as *errs.ParseError. Errors from the
// cursor itself are returned as they are.
func (r *TreeReader) ReadTree(cur token.Cursor) (node.Node, error) {
	r.stats = Stats{}
	r.depth = 0

	kind := cur.Kind()
	if kind == token.KindNone {
		var err error
		if kind, err = cur.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				return node.Node{}, errs.NewParseError(msgNoContent, "", -1, io.ErrUnexpectedEOF)
			}

			return node.Node{}, err
		}
	}

	var (
		root node.Node
		err  error
	)
	switch kind {
	case token.KindStartObject:
		root, err = r.readObject(cur)
	case token.KindEndObject:
		r.stats.Nodes++
		root = node.Object()
	case token.KindStartArray:
		// Vector detection only applies to object members.
		root, err = r.readArray(cur, "")
	default:
		root, err = r.readValue(cur, kind, "")
	}
	if err != nil {
		return node.Node{}, err
	}

	if r.debugEnabled() {
		r.cfg.logger.Debug("tree read",
			"root", root.Kind().String(),
			"nodes", r.stats.Nodes,
			"vectors", r.stats.Vectors,
			"vectorElements", r.stats.VectorElements,
			"vectorsSkipped", r.stats.VectorsSkipped,
		)
	}

	return root, nil
}

func (r *TreeReader) debugEnabled() bool {
	return r.cfg.logger != nil && r.cfg.logger.Enabled(context.Background(), slog.LevelDebug)
}

func (r *TreeReader) intern(name string) string {
	if r.names == nil {
		return name
	}

	return r.names.Intern(name)
}

func (r *TreeReader) enter(cur token.Cursor) error {
	r.depth++
	if r.depth > r.cfg.maxDepth {
		pe := errs.NewParseError(msgMaxDepth, token.Describe(cur), cur.Offset(), errs.ErrMaxDepth)
		pe.FieldName = cur.FieldName()

		return pe
	}

	return nil
}

// advance moves the cursor and turns end of input into a parse error, since
// every caller is inside an unfinished container.
func advance(cur token.Cursor) (token.Kind, error) {
	kind, err := cur.Next()
	if err != nil {
		return token.KindNone, eofError(err)
	}

	return kind, nil
}

func eofError(err error) error {
	if errors.Is(err, io.EOF) {
		return errs.NewParseError(msgUnexpectedEOF, "", -1, io.ErrUnexpectedEOF)
	}

	return err
}

func parseError(cur token.Cursor, msg, field string, cause error) *errs.ParseError {
	pe := errs.NewParseError(msg, token.Describe(cur), cur.Offset(), cause)
	pe.FieldName = field

	return pe
}

// readObject builds an object; cur is on its start-object token.
func (r *TreeReader) readObject(cur token.Cursor) (node.Node, error) {
	if err := r.enter(cur); err != nil {
		return node.Node{}, err
	}

	obj := node.NewObject()
	for {
		name, ok, err := cur.NextFieldName()
		if err != nil {
			return node.Node{}, eofError(err)
		}
		if !ok {
			break
		}
		name = r.intern(name)

		kind, err := advance(cur)
		if err != nil {
			return node.Node{}, err
		}
		value, err := r.readValue(cur, kind, name)
		if err != nil {
			return node.Node{}, err
		}

		if replaced := obj.Put(name, value); replaced && r.cfg.duplicates == DuplicateReject {
			return node.Node{}, parseError(cur, msgDuplicateField, name, errs.ErrDuplicateField)
		}
	}

	if cur.Kind() != token.KindEndObject {
		return node.Node{}, parseError(cur, msgShouldBeEndObj, "", nil)
	}

	r.depth--
	r.stats.Nodes++

	return node.FromObject(obj), nil
}

// readArray builds an array; cur is on its start-array token. field is the
// name of the object member holding the array, or "" for array elements and
// the root.
func (r *TreeReader) readArray(cur token.Cursor, field string) (node.Node, error) {
	if field == r.cfg.vectorField && field != "" && r.cfg.vectorMode != format.VectorGeneric {
		return r.readVector(cur, field)
	}

	if err := r.enter(cur); err != nil {
		return node.Node{}, err
	}

	items := []node.Node{}
	for {
		kind, err := advance(cur)
		if err != nil {
			return node.Node{}, err
		}
		if kind == token.KindEndArray {
			break
		}

		item, err := r.readValue(cur, kind, "")
		if err != nil {
			return node.Node{}, err
		}
		items = append(items, item)
	}

	r.depth--
	r.stats.Nodes++

	return node.Array(items...), nil
}

// readValue dispatches on the kind of the token cur is on.
func (r *TreeReader) readValue(cur token.Cursor, kind token.Kind, field string) (node.Node, error) {
	switch kind {
	case token.KindStartObject:
		return r.readObject(cur)
	case token.KindStartArray:
		return r.readArray(cur, field)
	case token.KindString:
		text, err := cur.Text()
		if err != nil {
			return node.Node{}, err
		}
		r.stats.Nodes++

		return node.String(text), nil
	case token.KindInt:
		return r.readInt(cur)
	case token.KindFloat:
		return r.readFloat(cur)
	case token.KindTrue:
		r.stats.Nodes++
		return node.Bool(true), nil
	case token.KindFalse:
		r.stats.Nodes++
		return node.Bool(false), nil
	case token.KindNull:
		r.stats.Nodes++
		return node.Null(), nil
	default:
		return node.Node{}, parseError(cur, msgUnsupportedToken, field, nil)
	}
}

// readInt picks the narrowest integer node that holds the value exactly.
func (r *TreeReader) readInt(cur token.Cursor) (node.Node, error) {
	r.stats.Nodes++

	v32, err := cur.Int32()
	if err == nil {
		return node.Int32(v32), nil
	}
	if !errors.Is(err, errs.ErrNumberRange) {
		return node.Node{}, err
	}

	v64, err := cur.Int64()
	if err == nil {
		return node.Int64(v64), nil
	}
	if !errors.Is(err, errs.ErrNumberRange) {
		return node.Node{}, err
	}

	bi, err := cur.BigInt()
	if err != nil {
		return node.Node{}, err
	}

	return node.BigInt(bi), nil
}

func (r *TreeReader) readFloat(cur token.Cursor) (node.Node, error) {
	r.stats.Nodes++

	if r.cfg.floatsAsDecimal {
		d, err := cur.Decimal()
		if err != nil {
			return node.Node{}, err
		}

		return node.Decimal(d), nil
	}

	f, err := cur.Float64()
	if err != nil {
		return node.Node{}, err
	}

	return node.Float64(f), nil
}
