package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/signadot/graphmap/debug"
	"github.com/signadot/graphmap/format"
	"github.com/signadot/graphmap/ir"

	"github.com/goccy/go-yaml"
	"github.com/segmentio/encoding/json"
)

// Parse parses d into a tree. The input format defaults to JSON.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmpty
	}
	if debug.Parse() {
		debug.Logf("parse %d bytes as %s\n", len(d), pOpts.format)
	}
	switch {
	case pOpts.format.IsJSON():
		return parseJSON(d)
	case pOpts.format.IsYAML():
		return parseYAML(d)
	}
	return nil, fmt.Errorf("%w: %w: %s", ErrParse, format.ErrBadFormat, pOpts.format)
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrParse)
	}
	return fromJSON(v)
}

func fromJSON(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return ir.FromNumber(x.String()), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := fromJSON(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			n, err := fromJSON(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	}
	return nil, fmt.Errorf("%w: unexpected value %T", ErrParse, v)
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromNumber(strconv.FormatUint(x, 10)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(x))
		for i, item := range x {
			n, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: fmt.Sprint(item.Key), Val: n}
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			n, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	}
	return nil, fmt.Errorf("%w: unexpected yaml value %T", ErrParse, v)
}
