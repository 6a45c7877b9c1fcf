package node

import (
	"iter"
	"slices"
)

// indexThreshold is the field count above which an ObjectNode maintains a
// name index instead of scanning its key list.
const indexThreshold = 8

// ObjectNode is an ordered set of named fields with unique names.
//
// Fields keep their first insertion position; replacing a field's value does
// not move it. The zero value is an empty object ready to use.
type ObjectNode struct {
	keys  []string
	vals  []Node
	index map[string]int
}

// NewObject returns an empty ObjectNode.
func NewObject() *ObjectNode {
	return &ObjectNode{}
}

func (o *ObjectNode) find(name string) int {
	if o.index != nil {
		if i, ok := o.index[name]; ok {
			return i
		}

		return -1
	}

	for i, k := range o.keys {
		if k == name {
			return i
		}
	}

	return -1
}

// Put stores n under name and reports whether an existing value was replaced.
func (o *ObjectNode) Put(name string, n Node) bool {
	if i := o.find(name); i >= 0 {
		o.vals[i] = n
		return true
	}

	o.keys = append(o.keys, name)
	o.vals = append(o.vals, n)

	switch {
	case o.index != nil:
		o.index[name] = len(o.keys) - 1
	case len(o.keys) > indexThreshold:
		o.index = make(map[string]int, len(o.keys)*2)
		for i, k := range o.keys {
			o.index[k] = i
		}
	}

	return false
}

// Set stores n under name. A later Set of the same name wins.
func (o *ObjectNode) Set(name string, n Node) {
	o.Put(name, n)
}

// Get returns the value stored under name.
func (o *ObjectNode) Get(name string) (Node, bool) {
	if i := o.find(name); i >= 0 {
		return o.vals[i], true
	}

	return Node{}, false
}

// Has reports whether a field named name exists.
func (o *ObjectNode) Has(name string) bool {
	return o.find(name) >= 0
}

// Len returns the number of fields.
func (o *ObjectNode) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the field names in insertion order.
func (o *ObjectNode) Keys() []string {
	return slices.Clone(o.keys)
}

// All iterates over the fields in insertion order.
func (o *ObjectNode) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for i, k := range o.keys {
			if !yield(k, o.vals[i]) {
				return
			}
		}
	}
}
