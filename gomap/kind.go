package gomap

import (
	"fmt"

	"github.com/signadot/graphmap/ir"
)

// Kind is the type-erased view of a Table, for callers that pick the target
// type at run time.
type Kind interface {
	Name() string
	Bindings() []BindingInfo
	DecodeAny(node *ir.Node, opts ...DecodeOption) (any, error)
	DecodeListAny(node *ir.Node, opts ...DecodeOption) ([]any, error)
	SnapshotAny(v any) (*ir.Node, error)
}

var _ Kind = (*Table[struct{}])(nil)

func (t *Table[T]) DecodeAny(node *ir.Node, opts ...DecodeOption) (any, error) {
	return Decode(node, t, opts...)
}

func (t *Table[T]) DecodeListAny(node *ir.Node, opts ...DecodeOption) ([]any, error) {
	vs, err := DecodeList(node, t, opts...)
	if err != nil {
		return nil, err
	}
	res := make([]any, len(vs))
	for i := range vs {
		res[i] = &vs[i]
	}
	return res, nil
}

// SnapshotAny accepts a T or a *T.
func (t *Table[T]) SnapshotAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *T:
		if x == nil {
			return ir.Null(), nil
		}
		return t.Snapshot(x), nil
	case T:
		return t.Snapshot(&x), nil
	}
	return nil, fmt.Errorf("%s: cannot snapshot %T", t.name, v)
}
