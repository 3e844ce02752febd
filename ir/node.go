package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Int64:  &v,
		Number: strconv.FormatInt(v, 10),
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
	}
}

// FromNumber builds a number node from its literal text. Int64 is set when
// the literal is an integer that fits, Float64 when it parses as a float.
// Number always keeps the literal so that identifiers survive unchanged.
func FromNumber(lit string) *Node {
	res := &Node{Type: NumberType, Number: lit}
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		res.Int64 = &i
		return res
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil && !math.IsInf(f, 0) {
		res.Float64 = &f
	}
	return res
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromSlice(ys []*Node) *Node {
	res := &Node{Type: ArrayType, Values: ys}
	for i, y := range ys {
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// FromMap builds an object node with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: yMap[k]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node preserving the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i, kv := range kvs {
		y := kv.Val
		if y == nil {
			y = Null()
		}
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = kv.Key
		res.Fields[i] = &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
			Type:        StringType,
			String:      kv.Key,
		}
		res.Values[i] = y
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		key := node.Fields[i].String
		if _, ok := res[key]; ok {
			continue
		}
		res[key] = node.Values[i]
	}
	return res
}

// Get returns the value of the first field named key, or nil if y is not an
// object or has no such field.
func (y *Node) Get(key string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f.String == key {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) IsNull() bool {
	return y == nil || y.Type == NullType
}
