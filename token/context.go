package token

// frame is one open container on the nesting stack.
type frame struct {
	object     bool
	expectName bool   // object only: the next string token is a member name
	name       string // object only: the member currently being read
}

// nesting tracks open containers so cursors can classify object keys and
// report the field a value token belongs to.
type nesting struct {
	stack []frame
}

func (n *nesting) reset() {
	n.stack = n.stack[:0]
}

func (n *nesting) top() *frame {
	if len(n.stack) == 0 {
		return nil
	}

	return &n.stack[len(n.stack)-1]
}

// expectingName reports whether the next string token is an object key.
func (n *nesting) expectingName() bool {
	f := n.top()
	return f != nil && f.object && f.expectName
}

func (n *nesting) valueField() string {
	if f := n.top(); f != nil && f.object {
		return f.name
	}

	return ""
}

func (n *nesting) valueDone() {
	if f := n.top(); f != nil && f.object {
		f.expectName = true
	}
}

// enter records a classified token and returns the field name the cursor
// reports for it. Unbalanced end tokens are tolerated.
func (n *nesting) enter(kind Kind, text string) string {
	switch kind {
	case KindFieldName:
		if f := n.top(); f != nil && f.object {
			f.name = text
			f.expectName = false
		}

		return text
	case KindStartObject, KindStartArray:
		field := n.valueField()
		n.stack = append(n.stack, frame{object: kind == KindStartObject, expectName: true})

		return field
	case KindEndObject, KindEndArray:
		if len(n.stack) > 0 {
			n.stack = n.stack[:len(n.stack)-1]
		}
		field := n.valueField()
		n.valueDone()

		return field
	default:
		field := n.valueField()
		n.valueDone()

		return field
	}
}
