package gomap

import (
	"fmt"

	"github.com/signadot/graphmap/ir"
	"github.com/signadot/graphmap/parse"
)

// DataKey is the key of the list in a connection envelope,
// {"data": [...], "paging": {...}}.
const DataKey = "data"

// Decode populates a new T from an object node.
func Decode[T any](node *ir.Node, tbl *Table[T], opts ...DecodeOption) (*T, error) {
	if node == nil {
		return nil, &UnmarshalError{Type: tbl.name, Message: "no input", Err: ErrStructure}
	}
	if node.Type != ir.ObjectType {
		return nil, &UnmarshalError{
			Type:    tbl.name,
			Path:    node.Path(),
			Message: fmt.Sprintf("expected object, got %s", node.Type),
			Err:     ErrStructure,
		}
	}
	cfg := newDecodeConfig(opts)
	ds := &decodeState{hooks: cfg.hooks}
	res := new(T)
	tbl.decodeObject(res, node, ds)
	return res, nil
}

// DecodeList populates a list of T from an array node. An empty object is
// read as an empty list, and an object holding an array under DataKey is read
// as that array.
func DecodeList[T any](node *ir.Node, tbl *Table[T], opts ...DecodeOption) ([]T, error) {
	if node == nil {
		return nil, &UnmarshalError{Type: tbl.name, Message: "no input", Err: ErrStructure}
	}
	arr := node
	if node.Type == ir.ObjectType {
		if len(node.Fields) == 0 {
			return []T{}, nil
		}
		arr = node.Get(DataKey)
		if arr == nil || arr.Type != ir.ArrayType {
			return nil, &UnmarshalError{
				Type:    tbl.name,
				Path:    node.Path(),
				Message: fmt.Sprintf("expected array or object with %q array", DataKey),
				Err:     ErrStructure,
			}
		}
	}
	if arr.Type != ir.ArrayType {
		return nil, &UnmarshalError{
			Type:    tbl.name,
			Path:    node.Path(),
			Message: fmt.Sprintf("expected array, got %s", node.Type),
			Err:     ErrStructure,
		}
	}
	cfg := newDecodeConfig(opts)
	ds := &decodeState{hooks: cfg.hooks}
	m := &meta{owner: tbl.name, attr: DataKey, wire: DataKey, shape: ShapeSequence}
	return decodeElements(arr, tbl, ds, m), nil
}

// DecodeJSON parses data and decodes the result with Decode.
func DecodeJSON[T any](data []byte, tbl *Table[T], opts ...DecodeOption) (*T, error) {
	node, err := parseInput(data, tbl.name, opts)
	if err != nil {
		return nil, err
	}
	return Decode(node, tbl, opts...)
}

// DecodeJSONList parses data and decodes the result with DecodeList.
func DecodeJSONList[T any](data []byte, tbl *Table[T], opts ...DecodeOption) ([]T, error) {
	node, err := parseInput(data, tbl.name, opts)
	if err != nil {
		return nil, err
	}
	return DecodeList(node, tbl, opts...)
}

func parseInput(data []byte, name string, opts []DecodeOption) (*ir.Node, error) {
	cfg := newDecodeConfig(opts)
	node, err := parse.Parse(data, cfg.ParseOptions...)
	if err != nil {
		return nil, &UnmarshalError{
			Type:    name,
			Message: err.Error(),
			Err:     fmt.Errorf("%w: %w", ErrStructure, err),
		}
	}
	return node, nil
}
