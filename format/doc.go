// Package format enumerates the input formats accepted by parse.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	node, err := parse.Parse(data, parse.ParseFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/graphmap/parse - Parse bytes to IR
package format
