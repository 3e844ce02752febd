package gomap

import "github.com/signadot/graphmap/ir"

// Shape is the expected wire shape of a binding.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeString
	ShapeNumber
	ShapeBool
	ShapeObject
	ShapeSequence
)

func (s Shape) String() string {
	switch s {
	case ShapeString:
		return "scalar-string"
	case ShapeNumber:
		return "scalar-number"
	case ShapeBool:
		return "scalar-boolean"
	case ShapeObject:
		return "nested-object"
	case ShapeSequence:
		return "sequence"
	}
	return "none"
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ShapeOf returns the shape of a node type. Null has no shape.
func ShapeOf(t ir.Type) Shape {
	switch t {
	case ir.StringType:
		return ShapeString
	case ir.NumberType:
		return ShapeNumber
	case ir.BoolType:
		return ShapeBool
	case ir.ObjectType:
		return ShapeObject
	case ir.ArrayType:
		return ShapeSequence
	}
	return ShapeNone
}
