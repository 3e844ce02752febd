package encode

import (
	"bytes"
	"io"
	"strconv"

	"github.com/signadot/graphmap/ir"
)

type EncState struct {
	name  string
	lines bool
	Color func(ir.Type, ColorAttr, string) string
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// Encode renders node as a compact attribute listing:
//
//	{id="20" width=100 tags=[{id="5" x=10 y=20}] place=null}
//
// The rendering is meant for people; it is not JSON and is not read back.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	if es.name != "" {
		buf.WriteString(es.color(ir.ObjectType, NameColor, es.name))
	}
	es.encode(buf, node, 0)
	if es.lines {
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// String renders node with default options.
func String(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	_ = Encode(node, buf, opts...)
	return buf.String()
}

func (es *EncState) encode(buf *bytes.Buffer, node *ir.Node, depth int) {
	if node == nil {
		buf.WriteString(es.color(ir.NullType, ValueColor, "null"))
		return
	}
	switch node.Type {
	case ir.NullType:
		buf.WriteString(es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		buf.WriteString(es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		buf.WriteString(es.color(ir.NumberType, ValueColor, numberText(node)))
	case ir.StringType:
		buf.WriteString(es.color(ir.StringType, ValueColor, strconv.Quote(node.String)))
	case ir.ArrayType:
		buf.WriteString(es.color(ir.ArrayType, SepColor, "["))
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(' ')
			}
			es.encode(buf, v, depth+1)
		}
		buf.WriteString(es.color(ir.ArrayType, SepColor, "]"))
	case ir.ObjectType:
		multi := es.lines && depth == 0
		buf.WriteString(es.color(ir.ObjectType, SepColor, "{"))
		for i, f := range node.Fields {
			switch {
			case multi:
				buf.WriteString("\n  ")
			case i > 0:
				buf.WriteByte(' ')
			}
			buf.WriteString(es.color(ir.ObjectType, FieldColor, f.String))
			buf.WriteString(es.color(ir.ObjectType, SepColor, "="))
			es.encode(buf, node.Values[i], depth+1)
		}
		if multi && len(node.Fields) > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(es.color(ir.ObjectType, SepColor, "}"))
	}
}

func numberText(node *ir.Node) string {
	switch {
	case node.Number != "":
		return node.Number
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}
