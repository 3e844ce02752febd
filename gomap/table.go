package gomap

import (
	"fmt"

	"github.com/signadot/graphmap/encode"
	"github.com/signadot/graphmap/ir"
)

// Table is the binding table of T. It is read-only once built.
type Table[T any] struct {
	name     string
	bindings []Binding[T]
}

// NewTable builds the binding table of T. Embedded bindings are flattened in
// place. It panics if two bindings share an attribute name, since that is a
// programming error in the table declaration.
func NewTable[T any](name string, bindings ...Binding[T]) *Table[T] {
	t := &Table[T]{name: name}
	seen := map[string]bool{}
	add := func(b Binding[T]) {
		if seen[b.attr] {
			panic(fmt.Sprintf("gomap: %s: duplicate attribute %q", name, b.attr))
		}
		seen[b.attr] = true
		b.owner = name
		t.bindings = append(t.bindings, b)
	}
	for _, b := range bindings {
		if b.embedded {
			for _, lb := range b.lifted {
				add(lb)
			}
			continue
		}
		add(b)
	}
	return t
}

func (t *Table[T]) Name() string {
	return t.name
}

// Bindings describes the table in declaration order.
func (t *Table[T]) Bindings() []BindingInfo {
	res := make([]BindingInfo, len(t.bindings))
	for i := range t.bindings {
		res[i] = t.bindings[i].info()
	}
	return res
}

func (t *Table[T]) decodeObject(dst *T, node *ir.Node, ds *decodeState) {
	for i := range t.bindings {
		b := &t.bindings[i]
		v := node.Get(b.wire)
		if v.IsNull() {
			continue
		}
		if b.decode(dst, v, ds, &b.meta) {
			continue
		}
		tolerated := false
		for _, tt := range b.tolerated {
			if tt == v.Type {
				tolerated = true
				break
			}
		}
		ds.report(&b.meta, v, b.shape, tolerated)
	}
}

// Snapshot returns the declared state of v as a tree keyed by attribute name
// in declaration order. Absent nested objects are null; absent sequences are
// empty.
func (t *Table[T]) Snapshot(v *T) *ir.Node {
	kvs := make([]ir.KeyVal, len(t.bindings))
	for i := range t.bindings {
		b := &t.bindings[i]
		kvs[i] = ir.KeyVal{Key: b.attr, Val: b.snapshot(v)}
	}
	return ir.FromKeyVals(kvs)
}

// Equal reports whether a and b hold the same declared state.
func (t *Table[T]) Equal(a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return ir.Compare(t.Snapshot(a), t.Snapshot(b)) == 0
}

// Hash is consistent with Equal within a process.
func (t *Table[T]) Hash(v *T) uint64 {
	if v == nil {
		return 0
	}
	return t.Snapshot(v).Hash()
}

// Format renders v as Name{attr=value ...}.
func (t *Table[T]) Format(v *T) string {
	if v == nil {
		return t.name + "(nil)"
	}
	return encode.String(t.Snapshot(v), encode.EncodeName(t.name))
}
