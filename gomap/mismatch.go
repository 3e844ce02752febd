package gomap

import (
	"context"
	"log/slog"

	"github.com/signadot/graphmap/debug"
	"github.com/signadot/graphmap/ir"
)

// Mismatch describes a value that did not have the shape its binding
// expects. The attribute was left untouched.
type Mismatch struct {
	Type      string // owning type name
	Attr      string
	Wire      string
	Path      string
	Expected  Shape
	Got       ir.Type
	Tolerated bool // the wire type was declared with Tolerate
}

type MismatchFunc func(Mismatch)

// LogMismatches returns a hook that logs tolerated shapes at debug level and
// other mismatches at warn level.
func LogMismatches(logger *slog.Logger) MismatchFunc {
	return func(m Mismatch) {
		level := slog.LevelWarn
		msg := "shape mismatch"
		if m.Tolerated {
			level = slog.LevelDebug
			msg = "tolerated alternate shape"
		}
		logger.LogAttrs(context.Background(), level, msg,
			slog.String("type", m.Type),
			slog.String("attr", m.Attr),
			slog.String("wire", m.Wire),
			slog.String("path", m.Path),
			slog.String("expected", m.Expected.String()),
			slog.String("got", m.Got.String()),
			slog.String("got_shape", ShapeOf(m.Got).String()),
		)
	}
}

type decodeState struct {
	hooks []MismatchFunc
}

func (ds *decodeState) report(m *meta, node *ir.Node, expected Shape, tolerated bool) {
	if debug.Decode() {
		debug.Logf("%s.%s: expected %s at %s, got %s (tolerated=%t)\n", m.owner, m.attr, expected, node.Path(), node.Type, tolerated)
	}
	if len(ds.hooks) == 0 {
		return
	}
	mm := Mismatch{
		Type:      m.owner,
		Attr:      m.attr,
		Wire:      m.wire,
		Path:      node.Path(),
		Expected:  expected,
		Got:       node.Type,
		Tolerated: tolerated,
	}
	for _, h := range ds.hooks {
		h(mm)
	}
}
