// Package parse turns raw response bytes into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(body)
//	if err != nil {
//	    return err
//	}
//
//	// YAML samples, for fixtures and hand-written inputs
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// JSON numbers keep their literal text (see ir.Node.Number). Object keys of
// JSON input come out in sorted order; YAML input keeps document order.
//
// # Related Packages
//
//   - github.com/signadot/graphmap/ir - IR representation
//   - github.com/signadot/graphmap/gomap - Decode IR into typed objects
package parse
