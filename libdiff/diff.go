package libdiff

import (
	"fmt"

	"github.com/signadot/graphmap/encode"
	"github.com/signadot/graphmap/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "<unknown op>"
}

// Change is a single difference. From is nil for an Insert and To is nil
// for a Delete.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s %s", c.Path, encode.String(c.To))
	case Delete:
		return fmt.Sprintf("- %s %s", c.Path, encode.String(c.From))
	}
	if c.From.Type == ir.StringType && c.To.Type == ir.StringType {
		return fmt.Sprintf("~ %s %s", c.Path, DiffString(c.From.String, c.To.String))
	}
	return fmt.Sprintf("~ %s %s -> %s", c.Path, encode.String(c.From), encode.String(c.To))
}

// Diff returns the changes turning from into to, in document order. Equal
// trees give no changes.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(from, to, &res)
	return res
}

func diff(from, to *ir.Node, res *[]Change) {
	switch {
	case from.Type == ir.ObjectType && to.Type == ir.ObjectType:
		diffObject(from, to, res)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType:
		diffArray(from, to, res)
	case ir.Compare(from, to) != 0:
		*res = append(*res, Change{Path: to.Path(), Op: Replace, From: from, To: to})
	}
}

func diffObject(from, to *ir.Node, res *[]Change) {
	fieldMap := map[string]rune{}
	fromRunes := mapFieldsTo(fieldMap, from)
	toRunes := mapFieldsTo(fieldMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for range []rune(d.Text) {
				v := from.Values[fi]
				*res = append(*res, Change{Path: v.Path(), Op: Delete, From: v})
				fi++
			}
		case diffpatch.DiffEqual:
			for range []rune(d.Text) {
				diff(from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range []rune(d.Text) {
				v := to.Values[ti]
				*res = append(*res, Change{Path: v.Path(), Op: Insert, To: v})
				ti++
			}
		}
	}
}

func diffArray(from, to *ir.Node, res *[]Change) {
	n := min(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		diff(from.Values[i], to.Values[i], res)
	}
	for _, v := range from.Values[n:] {
		*res = append(*res, Change{Path: v.Path(), Op: Delete, From: v})
	}
	for _, v := range to.Values[n:] {
		*res = append(*res, Change{Path: v.Path(), Op: Insert, To: v})
	}
}

// mapFieldsTo assigns each distinct field name a rune so that field
// sequences can be diffed as text. Runes start above the surrogate range.
func mapFieldsTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(0xE000 + len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}
