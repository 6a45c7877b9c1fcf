package reader

import (
	"github.com/arloliu/vectree/format"
	"github.com/arloliu/vectree/node"
	"github.com/arloliu/vectree/token"
)

// readVector reads the array value of the reserved vector field according to
// the configured mode. cur is on the start-array token and is left on the
// matching end-array token.
func (r *TreeReader) readVector(cur token.Cursor, field string) (node.Node, error) {
	var (
		n   node.Node
		err error
	)

	switch r.cfg.vectorMode {
	case format.VectorSkip:
		if err = skipArray(cur); err != nil {
			return node.Node{}, err
		}
		r.stats.VectorsSkipped++
		if r.debugEnabled() {
			r.cfg.logger.Debug("vector skipped", "field", field)
		}

		return node.Missing(), nil
	case format.VectorListOfNumbers:
		n, err = r.readNumberList(cur, field)
	case format.VectorListOfStrings:
		n, err = r.readStringList(cur, field)
	default:
		n, err = r.readFloats(cur, field)
	}
	if err != nil {
		return node.Node{}, err
	}

	r.stats.Nodes++
	r.stats.Vectors++
	r.stats.VectorElements += n.Len()
	if r.debugEnabled() {
		r.cfg.logger.Debug("vector materialized",
			"field", field,
			"mode", r.cfg.vectorMode.String(),
			"elements", n.Len(),
		)
	}

	return n, nil
}

// readFloats collects the elements into a flat float32 sequence.
func (r *TreeReader) readFloats(cur token.Cursor, field string) (node.Node, error) {
	buf, idx := r.floats.Start(), 0

	for {
		kind, err := advance(cur)
		if err != nil {
			r.floats.Abort(buf)
			return node.Node{}, err
		}

		switch {
		case kind == token.KindEndArray:
			return node.Floats(r.floats.Finish(buf, idx)), nil
		case kind.IsNumeric():
			f, err := cur.Float32()
			if err != nil {
				r.floats.Abort(buf)
				return node.Node{}, err
			}
			buf, idx = r.floats.Append(buf, idx, f)
		default:
			r.floats.Abort(buf)
			return node.Node{}, parseError(cur, msgVectorNotNumber, field, nil)
		}
	}
}

// readNumberList builds an array of integer and float nodes with the same
// typing rules as generic arrays.
func (r *TreeReader) readNumberList(cur token.Cursor, field string) (node.Node, error) {
	items := []node.Node{}

	for {
		kind, err := advance(cur)
		if err != nil {
			return node.Node{}, err
		}

		var item node.Node
		switch kind {
		case token.KindEndArray:
			return node.Array(items...), nil
		case token.KindInt:
			item, err = r.readInt(cur)
		case token.KindFloat:
			item, err = r.readFloat(cur)
		default:
			return node.Node{}, parseError(cur, msgVectorNotNumber, field, nil)
		}
		if err != nil {
			return node.Node{}, err
		}
		items = append(items, item)
	}
}

// readStringList builds an array of string nodes holding each element's
// source text.
func (r *TreeReader) readStringList(cur token.Cursor, field string) (node.Node, error) {
	items := []node.Node{}

	for {
		kind, err := advance(cur)
		if err != nil {
			return node.Node{}, err
		}

		switch {
		case kind == token.KindEndArray:
			return node.Array(items...), nil
		case kind.IsNumeric():
			text, err := cur.Text()
			if err != nil {
				return node.Node{}, err
			}
			r.stats.Nodes++
			items = append(items, node.String(text))
		default:
			return node.Node{}, parseError(cur, msgVectorNotNumber, field, nil)
		}
	}
}

// skipArray consumes tokens up to and including the end-array matching the
// start-array cur is on, without inspecting their content.
func skipArray(cur token.Cursor) error {
	depth := 0

	for {
		kind, err := advance(cur)
		if err != nil {
			return err
		}

		switch {
		case kind.IsStart():
			depth++
		case kind.IsEnd():
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}
