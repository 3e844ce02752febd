package gomap

import (
	"slices"

	"github.com/signadot/graphmap/ir"

	"github.com/iancoleman/strcase"
)

// meta is the declarative part of a binding.
type meta struct {
	owner      string
	attr       string
	wire       string
	shape      Shape
	tolerated  []ir.Type
	deprecated bool
	envelope   string
}

// Binding pairs one attribute of T with a wire key. Bindings are built with
// the constructors in this file and refined with As, Deprecated, Tolerate
// and Unwrap before being handed to NewTable.
type Binding[T any] struct {
	meta
	decode   func(dst *T, node *ir.Node, ds *decodeState, m *meta) bool
	snapshot func(src *T) *ir.Node

	embedded bool
	lifted   []Binding[T]
}

// BindingInfo describes a binding for introspection.
type BindingInfo struct {
	Attr       string
	Wire       string
	Shape      Shape
	Tolerated  []ir.Type
	Deprecated bool
	Envelope   string
}

func (b *Binding[T]) info() BindingInfo {
	return BindingInfo{
		Attr:       b.attr,
		Wire:       b.wire,
		Shape:      b.shape,
		Tolerated:  slices.Clone(b.tolerated),
		Deprecated: b.deprecated,
		Envelope:   b.envelope,
	}
}

func newBinding[T any](attr string, shape Shape) Binding[T] {
	return Binding[T]{meta: meta{attr: attr, wire: strcase.ToSnake(attr), shape: shape}}
}

// As overrides the wire name.
func (b Binding[T]) As(wire string) Binding[T] {
	b.wire = wire
	return b
}

// Deprecated marks the attribute as discouraged. Decoding is unaffected.
func (b Binding[T]) Deprecated() Binding[T] {
	b.deprecated = true
	return b
}

// Tolerate declares alternate wire types that are expected for this key and
// absorbed without populating the attribute. Mismatch hooks see them with
// Tolerated set.
func (b Binding[T]) Tolerate(types ...ir.Type) Binding[T] {
	b.tolerated = append(slices.Clone(b.tolerated), types...)
	return b
}

// Unwrap lets a sequence binding accept an object whose key holds the list,
// as in {"data": [...]}.
func (b Binding[T]) Unwrap(key string) Binding[T] {
	b.envelope = key
	return b
}

func String[T any](attr string, field func(*T) *string) Binding[T] {
	b := newBinding[T](attr, ShapeString)
	b.decode = func(dst *T, node *ir.Node, _ *decodeState, _ *meta) bool {
		v, ok := toString(node)
		if ok {
			*field(dst) = v
		}
		return ok
	}
	b.snapshot = func(src *T) *ir.Node {
		return ir.FromString(*field(src))
	}
	return b
}

func Int[T any](attr string, field func(*T) *int) Binding[T] {
	b := newBinding[T](attr, ShapeNumber)
	b.decode = func(dst *T, node *ir.Node, _ *decodeState, _ *meta) bool {
		v, ok := toInt(node)
		if ok {
			*field(dst) = v
		}
		return ok
	}
	b.snapshot = func(src *T) *ir.Node {
		return ir.FromInt(int64(*field(src)))
	}
	return b
}

func Float[T any](attr string, field func(*T) *float64) Binding[T] {
	b := newBinding[T](attr, ShapeNumber)
	b.decode = func(dst *T, node *ir.Node, _ *decodeState, _ *meta) bool {
		v, ok := toFloat(node)
		if ok {
			*field(dst) = v
		}
		return ok
	}
	b.snapshot = func(src *T) *ir.Node {
		return ir.FromFloat(*field(src))
	}
	return b
}

func Bool[T any](attr string, field func(*T) *bool) Binding[T] {
	b := newBinding[T](attr, ShapeBool)
	b.decode = func(dst *T, node *ir.Node, _ *decodeState, _ *meta) bool {
		v, ok := toBool(node)
		if ok {
			*field(dst) = v
		}
		return ok
	}
	b.snapshot = func(src *T) *ir.Node {
		return ir.FromBool(*field(src))
	}
	return b
}

// Object binds a nested object decoded against tbl. The attribute stays nil
// when the key is absent or mismatched.
func Object[T, U any](attr string, tbl *Table[U], field func(*T) **U) Binding[T] {
	b := newBinding[T](attr, ShapeObject)
	b.decode = func(dst *T, node *ir.Node, ds *decodeState, _ *meta) bool {
		if node.Type != ir.ObjectType {
			return false
		}
		u := new(U)
		tbl.decodeObject(u, node, ds)
		*field(dst) = u
		return true
	}
	b.snapshot = func(src *T) *ir.Node {
		u := *field(src)
		if u == nil {
			return ir.Null()
		}
		return tbl.Snapshot(u)
	}
	return b
}

// Slice binds a sequence of nested objects decoded against tbl. Elements
// that are not objects are skipped and reported.
func Slice[T, U any](attr string, tbl *Table[U], field func(*T) *[]U) Binding[T] {
	b := newBinding[T](attr, ShapeSequence)
	b.decode = func(dst *T, node *ir.Node, ds *decodeState, m *meta) bool {
		arr := node
		if node.Type == ir.ObjectType && m.envelope != "" {
			if inner := node.Get(m.envelope); inner != nil && inner.Type == ir.ArrayType {
				arr = inner
			}
		}
		if arr.Type != ir.ArrayType {
			return false
		}
		*field(dst) = decodeElements(arr, tbl, ds, m)
		return true
	}
	b.snapshot = func(src *T) *ir.Node {
		us := *field(src)
		vals := make([]*ir.Node, len(us))
		for i := range us {
			vals[i] = tbl.Snapshot(&us[i])
		}
		return ir.FromSlice(vals)
	}
	return b
}

func decodeElements[U any](arr *ir.Node, tbl *Table[U], ds *decodeState, m *meta) []U {
	res := make([]U, 0, len(arr.Values))
	for _, elt := range arr.Values {
		if elt.Type == ir.NullType {
			continue
		}
		if elt.Type != ir.ObjectType {
			ds.report(m, elt, ShapeObject, false)
			continue
		}
		var u U
		tbl.decodeObject(&u, elt, ds)
		res = append(res, u)
	}
	return res
}

// Embed lifts the bindings of tbl into T through field. It is how a type
// composes a shared attribute set, such as an identity, into itself.
func Embed[T, E any](tbl *Table[E], field func(*T) *E) Binding[T] {
	b := Binding[T]{embedded: true}
	for i := range tbl.bindings {
		eb := &tbl.bindings[i]
		b.lifted = append(b.lifted, Binding[T]{
			meta: eb.meta,
			decode: func(dst *T, node *ir.Node, ds *decodeState, m *meta) bool {
				return eb.decode(field(dst), node, ds, m)
			},
			snapshot: func(src *T) *ir.Node {
				return eb.snapshot(field(src))
			},
		})
	}
	return b
}
