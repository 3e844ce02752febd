// Package filter selects decoded values with boolean expressions written in
// the expr language (https://expr-lang.org).
//
// An expression sees the value's snapshot as doc, keyed by attribute name:
//
//	doc.width >= 100 && len(doc.tags) > 0
//	getpath("$.from.name") == "Ann"
//	haspath("$.place.location") && longtime(doc.createdTime).Year() < 2013
//
// Absent nested objects are null in the snapshot and absent lists are
// empty. longtime yields the zero time for an absent or unreadable
// timestamp.
package filter

import (
	"errors"
	"fmt"
	"time"

	"github.com/signadot/graphmap/datetime"
	"github.com/signadot/graphmap/ir"

	"github.com/expr-lang/expr"
)

var ErrFilter = errors.New("filter error")

// DocVar is the name under which an expression sees the snapshot.
const DocVar = "doc"

type Filter struct {
	src string
}

// Compile checks src and returns a filter for it.
func Compile(src string) (*Filter, error) {
	if _, err := expr.Compile(src, exprOpts(ir.FromKeyVals(nil))...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFilter, err)
	}
	return &Filter{src: src}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates f against a snapshot.
func (f *Filter) Match(doc *ir.Node) (bool, error) {
	prg, err := expr.Compile(f.src, exprOpts(doc)...)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFilter, err)
	}
	out, err := expr.Run(prg, env(doc))
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrFilter, f.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s: expected bool, got %T", ErrFilter, f.src, out)
	}
	return b, nil
}

func env(doc *ir.Node) map[string]any {
	return map[string]any{DocVar: ir.ToAny(doc)}
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Env(env(doc)),
		expr.AsBool(),
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if errors.Is(err, ir.ErrNotFound) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if errors.Is(err, ir.ErrNotFound) {
				return false, nil
			}
			if err != nil {
				return nil, err
			}
			return !res.IsNull(), nil
		},
			new(func(string) bool)),
		expr.Function("longtime", func(params ...any) (any, error) {
			s, _ := params[0].(string)
			t, _ := datetime.ParseLong(s)
			return t, nil
		},
			new(func(any) time.Time)),
	}
}
