package gomap

import (
	"github.com/signadot/graphmap/parse"
)

// DecodeOption is an option for controlling a decode call.
type DecodeOption interface {
	applyDecode(*decodeConfig)
}

type decodeConfig struct {
	// ParseOptions to pass through to parse.Parse for DecodeJSON and
	// DecodeJSONList.
	ParseOptions []parse.ParseOption

	hooks []MismatchFunc
}

type decodeOptionFunc func(*decodeConfig)

func (f decodeOptionFunc) applyDecode(c *decodeConfig) { f(c) }

func newDecodeConfig(opts []DecodeOption) *decodeConfig {
	cfg := &decodeConfig{}
	for _, opt := range opts {
		opt.applyDecode(cfg)
	}
	return cfg
}

// WithMismatchHook registers f to be called for every field whose value did
// not have the expected shape. Hooks run in registration order.
func WithMismatchHook(f MismatchFunc) DecodeOption {
	return decodeOptionFunc(func(c *decodeConfig) {
		if f != nil {
			c.hooks = append(c.hooks, f)
		}
	})
}

// WithParseOptions sets the options used to parse raw input.
func WithParseOptions(opts ...parse.ParseOption) DecodeOption {
	return decodeOptionFunc(func(c *decodeConfig) {
		c.ParseOptions = append(c.ParseOptions, opts...)
	})
}
