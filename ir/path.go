package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns the JSONPath-style location of y relative to its root,
// for example "$.tags[0].x".
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + pathString(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			b.WriteString("." + pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(&b, "[%d]", *x.Index)
		}
	}
	return b.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		u64, err := strconv.ParseUint(frag[1:i+1], 10, 32)
		if err != nil {
			return err
		}
		index := int(u64)
		parent.Index = &index
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at path p below y. It returns an error wrapping
// ErrNotFound when a field or index does not exist.
func (y *Node) GetPath(p string) (*Node, error) {
	yp, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := y
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: expected array at %s, got %s", ErrNotFound, res.Path(), res.Type)
			}
			index := *yp.Index
			if index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %d out of bounds at %s (len %d)", ErrNotFound, index, res.Path(), len(res.Values))
			}
			res = res.Values[index]
		case yp.Field != nil:
			next := res.Get(*yp.Field)
			if next == nil {
				return nil, fmt.Errorf("%w: no field %q at %s", ErrNotFound, *yp.Field, res.Path())
			}
			res = next
		}
	}
	return res, nil
}
