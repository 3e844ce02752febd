// Package ir provides the parse tree that the mapper consumes.
//
// # Overview
//
// A Node represents a single JSON value:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// Each node maintains parent-child relationships, so that a node deep in a
// response can report where it came from:
//
//	node.Path() // e.g. "$.tags[0].x"
//
// The IR works as a recursive tagged union: values are placed in fields
// depending on the node type.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Keys are string
// typed nodes. Duplicate keys are preserved as they were read; Get and ToMap
// resolve a key to its first occurrence.
//
// # Numbers
//
// Number keeps the literal text of a number as it appeared on the wire.
// Int64 is set when the literal is an integer that fits in 64 bits,
// otherwise Float64 is set when it parses as a float. Callers that need to
// preserve large identifiers read Number.
//
// # Comparison and Hashing
//
//	equal := ir.Compare(a, b) == 0
//	h := node.Hash()
//
// Nodes that compare equal hash equally within a process.
//
// # Thread Safety
//
// Node structures are not thread-safe. A tree that is no longer modified may
// be read from multiple goroutines.
package ir
