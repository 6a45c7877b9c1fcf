// Package symtab canonicalizes object field names.
//
// Documents of the same shape repeat the same keys many times. A Table maps
// every name it has seen to one shared string instance, so trees built from a
// stream of similar documents hold one copy of each key instead of one per
// occurrence. Names are bucketed by their xxHash64; distinct names that share
// a hash live side by side in the same bucket and never alias each other.
package symtab

import "github.com/arloliu/vectree/internal/hash"

// DefaultMaxEntries bounds the number of names a Table retains before it
// starts over.
const DefaultMaxEntries = 4096

// Table is a field-name interner. It is not safe for concurrent use.
type Table struct {
	buckets      map[uint64][]string
	count        int
	maxEntries   int
	hasCollision bool
}

// New creates a Table retaining at most maxEntries names. A non-positive
// value selects DefaultMaxEntries.
func New(maxEntries int) *Table {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Table{
		buckets:    make(map[uint64][]string),
		maxEntries: maxEntries,
	}
}

// Intern returns the canonical instance of name, adding it on first sight.
//
// When the table is full it is cleared before the new name is added, so
// pathological inputs with unbounded distinct keys cannot grow it forever.
func (t *Table) Intern(name string) string {
	h := hash.ID(name)

	bucket := t.buckets[h]
	for _, s := range bucket {
		if s == name {
			return s
		}
	}

	if t.count >= t.maxEntries {
		t.Reset()
		bucket = nil
	}

	if len(bucket) > 0 {
		t.hasCollision = true
	}
	t.buckets[h] = append(bucket, name)
	t.count++

	return name
}

// Lookup reports whether name is already interned and returns its canonical
// instance.
func (t *Table) Lookup(name string) (string, bool) {
	for _, s := range t.buckets[hash.ID(name)] {
		if s == name {
			return s, true
		}
	}

	return "", false
}

// Len returns the number of interned names.
func (t *Table) Len() int {
	return t.count
}

// HasCollision reports whether two distinct interned names shared a hash.
func (t *Table) HasCollision() bool {
	return t.hasCollision
}

// Reset drops every interned name but keeps the allocated map.
func (t *Table) Reset() {
	for k := range t.buckets {
		delete(t.buckets, k)
	}
	t.count = 0
	t.hasCollision = false
}
